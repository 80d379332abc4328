package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jroosing/hydrasig/internal/dns"
)

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("record not found")

// StoredSIG is a SIG record as persisted in the store.
type StoredSIG struct {
	ID           int64
	Record       *dns.SIGRecord
	Presentation string
	CreatedAt    time.Time
}

// SIGFilter narrows ListSIGs. Zero fields match everything.
type SIGFilter struct {
	Owner       string
	TypeCovered dns.RecordType
	Signer      string
	KeyTag      *uint16
	Limit       int
}

const sigColumns = `id, owner, class, ttl, signed, rdata, presentation, created_at`

// PutSIG stores rec and returns its ID.
//
// A signed record is stored as its uncompressed RDATA. An unsigned record
// encodes to no RDATA at all, so its signing prefix (fixed fields and
// canonical signer name) is stored instead and the signed flag cleared.
func (db *DB) PutSIG(rec *dns.SIGRecord, opts dns.TextOptions) (int64, error) {
	var (
		rdata []byte
		err   error
	)
	if rec.IsSigned() {
		rdata, err = rec.MarshalRData()
	} else {
		rdata, err = rec.SigningPrefix()
	}
	if err != nil {
		return 0, fmt.Errorf("failed to encode SIG record: %w", err)
	}

	h := rec.Header()
	db.mu.Lock()
	defer db.mu.Unlock()

	res, err := db.conn.Exec(`
		INSERT INTO sig_records (
			owner, class, ttl, type_covered, algorithm, labels, orig_ttl,
			expiration, inception, key_tag, signer, signed, rdata, presentation
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		dns.CanonicalName(h.Name), h.Class, h.TTL,
		uint16(rec.TypeCovered), rec.Algorithm, rec.Labels, rec.OrigTTL,
		rec.Expiration.Unix(), rec.Inception.Unix(), rec.KeyTag,
		dns.CanonicalName(rec.SignerName), rec.IsSigned(), rdata,
		dns.FormatSIG(rec, opts),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert SIG record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

// GetSIG retrieves a record by ID.
func (db *DB) GetSIG(id int64) (*StoredSIG, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row := db.conn.QueryRow(`SELECT `+sigColumns+` FROM sig_records WHERE id = ?`, id)
	s, err := scanSIG(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListSIGs returns the records matching f ordered by ID.
func (db *DB) ListSIGs(f SIGFilter) ([]StoredSIG, error) {
	var (
		where []string
		args  []any
	)
	if f.Owner != "" {
		where = append(where, "owner = ?")
		args = append(args, dns.CanonicalName(f.Owner))
	}
	if f.TypeCovered != 0 {
		where = append(where, "type_covered = ?")
		args = append(args, uint16(f.TypeCovered))
	}
	if f.Signer != "" {
		where = append(where, "signer = ?")
		args = append(args, dns.CanonicalName(f.Signer))
	}
	if f.KeyTag != nil {
		where = append(where, "key_tag = ?")
		args = append(args, *f.KeyTag)
	}

	query := `SELECT ` + sigColumns + ` FROM sig_records`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}
	return db.querySIGs(query, args...)
}

// ExpiredBefore returns the records whose expiration is earlier than t.
// Instants are compared as absolute Unix seconds.
func (db *DB) ExpiredBefore(t time.Time) ([]StoredSIG, error) {
	return db.querySIGs(`SELECT `+sigColumns+` FROM sig_records WHERE expiration < ? ORDER BY expiration, id`, t.Unix())
}

// DeleteSIG removes a record by ID.
func (db *DB) DeleteSIG(id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	res, err := db.conn.Exec(`DELETE FROM sig_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete SIG record %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete SIG record %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored records.
func (db *DB) Count() (int, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var n int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM sig_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count SIG records: %w", err)
	}
	return n, nil
}

func (db *DB) querySIGs(query string, args ...any) ([]StoredSIG, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query SIG records: %w", err)
	}
	defer rows.Close()

	out := make([]StoredSIG, 0)
	for rows.Next() {
		s, err := scanSIG(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating SIG records: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanSIG reads one row and decodes its stored RDATA.
func scanSIG(row rowScanner) (*StoredSIG, error) {
	var (
		s      StoredSIG
		owner  string
		class  uint16
		ttl    uint32
		signed bool
		rdata  []byte
	)
	err := row.Scan(&s.ID, &owner, &class, &ttl, &signed, &rdata, &s.Presentation, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan SIG record: %w", err)
	}

	off := 0
	rec, err := dns.ParseSIGRData(rdata, &off, len(rdata))
	if err != nil {
		return nil, fmt.Errorf("stored SIG record %d is corrupt: %w", s.ID, err)
	}
	rec.SetHeader(dns.RRHeader{Name: owner, Class: class, TTL: ttl})
	if !signed {
		rec.Signature = dns.AbsentSignature()
	}
	s.Record = rec
	return &s, nil
}
