package ward

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type (
	// Registry is the clinical records store: staff identities, patients,
	// appointments, medical records and billing. It is the only component
	// that touches the database, everything above it works with the typed
	// records defined in this package.
	Registry struct {
		db        *sql.DB
		writeable bool
	}
)

func openRegistryDatabase(ctx context.Context, path string, readwrite bool) (*sql.DB, error) {
	var connstr string
	if readwrite {
		connstr = fmt.Sprintf("file:%v?_journal=wal&_fk=on&mode=rwc", path)
	} else {
		connstr = fmt.Sprintf("file:%v?_fk=on&mode=ro", path)
	}
	conn, err := sql.Open("sqlite3", connstr)
	if err != nil {
		return nil, fmt.Errorf("unable to open %v, cause %w", path, err)
	}
	err = conn.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to ping registry %v, cause %w", path, err)
	}
	return conn, nil
}

// OpenRegistry loads the registry at path, creating the schema when opened
// read-write for the first time.
func OpenRegistry(ctx context.Context, path string, readwrite bool) (*Registry, error) {
	conn, err := openRegistryDatabase(ctx, path, readwrite)
	if err != nil {
		return nil, err
	}
	r := &Registry{db: conn, writeable: readwrite}
	if readwrite {
		if err := r.init(ctx); err != nil {
			conn.Close()
			return nil, fmt.Errorf("unable to init registry %v, cause %w", path, err)
		}
	}
	return r, nil
}

func (r *Registry) init(ctx context.Context) error {
	stmts := []string{
		`create table if not exists staff(
			id integer primary key autoincrement,
			email text not null,
			password_hash text not null,
			role text not null,
			first_name text not null,
			last_name text not null,
			created_at timestamp not null default current_timestamp,
			unique(email, role))`,
		`create table if not exists patients(
			id integer primary key autoincrement,
			first_name text not null,
			last_name text not null,
			date_of_birth text not null,
			gender text not null,
			phone text not null default '',
			email text not null default '',
			address text not null default '',
			emergency_contact text not null default '',
			created_at timestamp not null default current_timestamp)`,
		`create table if not exists appointments(
			id integer primary key autoincrement,
			patient_id integer not null references patients(id),
			doctor_id integer not null references staff(id),
			appointment_date text not null,
			appointment_time text not null,
			notes text not null default '',
			status text not null default 'scheduled',
			created_at timestamp not null default current_timestamp)`,
		`create table if not exists medical_records(
			id integer primary key autoincrement,
			patient_id integer not null references patients(id),
			doctor_id integer not null references staff(id),
			visit_date text not null,
			diagnosis text not null default '',
			treatment text not null default '',
			prescription text not null default '',
			notes text not null default '',
			created_at timestamp not null default current_timestamp)`,
		`create table if not exists billing(
			id integer primary key autoincrement,
			patient_id integer not null references patients(id),
			services text not null default '[]',
			total_amount real not null default 0,
			status text not null default 'pending',
			created_at timestamp not null default current_timestamp)`,
	}
	for _, s := range stmts {
		if _, err := r.db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("unable to run schema statement, cause %w", err)
		}
	}
	return nil
}

func (r *Registry) Close() error {
	return r.db.Close()
}
