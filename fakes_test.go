package schemaverse

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

type fakeCall struct {
	sql  string
	args []interface{}
}

type fakeResponse struct {
	match   string
	respond func(args []interface{}) ([][]interface{}, error)
}

// fakeConn answers queries by the first registered substring found in the SQL and records
// every call it receives.
type fakeConn struct {
	responses []fakeResponse
	calls     []fakeCall
}

func (c *fakeConn) on(match string, respond func(args []interface{}) ([][]interface{}, error)) {
	c.responses = append(c.responses, fakeResponse{match: match, respond: respond})
}

func (c *fakeConn) onRows(match string, rows ...[]interface{}) {
	c.on(match, func(args []interface{}) ([][]interface{}, error) {
		return rows, nil
	})
}

func (c *fakeConn) callsMatching(match string) []fakeCall {
	var calls []fakeCall
	for _, call := range c.calls {
		if strings.Contains(call.sql, match) {
			calls = append(calls, call)
		}
	}
	return calls
}

func (c *fakeConn) respond(sql string, args []interface{}) ([][]interface{}, error) {
	c.calls = append(c.calls, fakeCall{sql: sql, args: args})
	for _, r := range c.responses {
		if strings.Contains(sql, r.match) {
			return r.respond(args)
		}
	}
	return nil, nil
}

func (c *fakeConn) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	_, err := c.respond(sql, args)
	if err != nil {
		return nil, err
	}
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (c *fakeConn) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	rows, err := c.respond(sql, args)
	if err != nil {
		return nil, err
	}
	return &fakeRows{rows: rows}, nil
}

func (c *fakeConn) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	rows, err := c.respond(sql, args)
	return fakeRow{rows: rows, err: err}
}

type fakeRow struct {
	rows [][]interface{}
	err  error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	if len(r.rows) == 0 {
		return pgx.ErrNoRows
	}
	return assign(r.rows[0], dest)
}

// fakeRows only implements what the repositories use; anything else panics on the nil
// embedded interface.
type fakeRows struct {
	pgx.Rows
	rows [][]interface{}
	next int
}

func (r *fakeRows) Next() bool {
	r.next++
	return r.next <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...interface{}) error {
	return assign(r.rows[r.next-1], dest)
}

func (r *fakeRows) Close() {}

func (r *fakeRows) Err() error {
	return nil
}

func assign(values []interface{}, dest []interface{}) error {
	if len(values) != len(dest) {
		return fmt.Errorf("fake row has %d values, scan wants %d", len(values), len(dest))
	}

	for i, v := range values {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}

		value := reflect.ValueOf(v)
		if !value.Type().AssignableTo(target.Type()) {
			if !value.Type().ConvertibleTo(target.Type()) {
				return fmt.Errorf("column %d: can't scan %T into %s", i, v, target.Type())
			}
			value = value.Convert(target.Type())
		}
		target.Set(value)
	}

	return nil
}

type fakeTx struct {
	pgx.Tx
	conn       *fakeConn
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return tx.conn.Exec(ctx, sql, args...)
}

func (tx *fakeTx) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return tx.conn.Query(ctx, sql, args...)
}

func (tx *fakeTx) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return tx.conn.QueryRow(ctx, sql, args...)
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	if !tx.committed {
		tx.rolledBack = true
	}
	return nil
}

type fakeBeginner struct {
	conn *fakeConn
	txs  []*fakeTx
}

func (b *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	tx := &fakeTx{conn: b.conn}
	b.txs = append(b.txs, tx)
	return tx, nil
}
