package db

import (
	"context"
	"fmt"
)

// schemaDDL creates the five entity tables. Every statement is idempotent
// so EnsureSchema is safe to run on every startup.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		patient_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		date_of_birth TEXT,
		gender TEXT,
		address TEXT,
		phone TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE,
		admission_date TEXT,
		medical_history TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		doctor_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		specialization TEXT,
		phone TEXT UNIQUE,
		email TEXT,
		department TEXT,
		license_number TEXT UNIQUE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		appointment_id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id INTEGER NOT NULL,
		doctor_id INTEGER NOT NULL,
		appointment_date TEXT NOT NULL,
		appointment_time TEXT NOT NULL,
		purpose TEXT,
		status TEXT DEFAULT 'Scheduled',
		FOREIGN KEY (patient_id) REFERENCES patients(patient_id) ON DELETE CASCADE,
		FOREIGN KEY (doctor_id) REFERENCES doctors(doctor_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS medical_records (
		record_id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id INTEGER NOT NULL,
		doctor_id INTEGER NOT NULL,
		record_date TEXT NOT NULL,
		diagnosis TEXT,
		treatment TEXT,
		prescription TEXT,
		notes TEXT,
		FOREIGN KEY (patient_id) REFERENCES patients(patient_id) ON DELETE CASCADE,
		FOREIGN KEY (doctor_id) REFERENCES doctors(doctor_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS billing (
		bill_id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id INTEGER NOT NULL,
		appointment_id INTEGER,
		service_description TEXT NOT NULL,
		amount REAL NOT NULL,
		bill_date TEXT NOT NULL,
		due_date TEXT,
		status TEXT DEFAULT 'Pending',
		FOREIGN KEY (patient_id) REFERENCES patients(patient_id) ON DELETE CASCADE,
		FOREIGN KEY (appointment_id) REFERENCES appointments(appointment_id) ON DELETE SET NULL
	)`,
}

// EnsureSchema creates any missing entity tables. A failure here is fatal
// to the caller: there is no degraded mode without a schema.
func (d *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaDDL {
		if _, err := d.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
