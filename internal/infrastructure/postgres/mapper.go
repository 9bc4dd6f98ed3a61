package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/CalinaBorzan/Orders-Management/internal/domain"
)

// Column liga un atributo de la entidad con su columna en la tabla.
// Ref devuelve un puntero al campo: sirve como destino de Scan al
// materializar filas y como argumento de consulta al escribir (pgx
// desreferencia punteros al codificar).
type Column[E any] struct {
	Name string
	Ref  func(e *E) any
}

// Mapping descriptor inmutable de mapeo entidad-tabla: nombre de tabla,
// columna de clave primaria y resto de columnas mapeadas. Se fija en la
// construcción y no cambia durante la vida del proceso. Cada columna queda
// ligada explícitamente a su campo, así la materialización no depende del
// orden ni del conteo de columnas del result set.
type Mapping[E any] struct {
	Table       string
	PK          Column[E]
	PKGenerated bool // true: la clave la asigna el almacén y se excluye del INSERT
	Columns     []Column[E]
}

// Mapper motor CRUD genérico sobre un Mapping. El SQL de las cinco
// operaciones se precalcula en la construcción; toda consulta es
// parametrizada y los identificadores van entre comillas (la tabla de
// facturas se llama "log" y varias columnas son camelCase).
type Mapper[E any] struct {
	q Querier
	m Mapping[E]

	selectAllSQL  string
	selectByIDSQL string
	insertSQL     string
	updateSQL     string
	deleteSQL     string
}

// NewMapper construye el mapper para un Querier (pool o tx) y su descriptor.
func NewMapper[E any](q Querier, m Mapping[E]) *Mapper[E] {
	table := quoteIdent(m.Table)
	pk := quoteIdent(m.PK.Name)

	names := make([]string, 0, len(m.Columns)+1)
	names = append(names, pk)
	for _, c := range m.Columns {
		names = append(names, quoteIdent(c.Name))
	}
	selectAll := fmt.Sprintf("SELECT %s FROM %s", strings.Join(names, ", "), table)

	return &Mapper[E]{
		q:             q,
		m:             m,
		selectAllSQL:  selectAll,
		selectByIDSQL: fmt.Sprintf("%s WHERE %s = $1", selectAll, pk),
		insertSQL:     buildInsertSQL(table, pk, m),
		updateSQL:     buildUpdateSQL(table, pk, m),
		deleteSQL:     fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, pk),
	}
}

// FindAll devuelve todas las entidades de la tabla, en el orden en que el
// almacén las retorne. Tabla vacía => slice vacío, nunca nil.
func (mp *Mapper[E]) FindAll(ctx context.Context) ([]*E, error) {
	rows, err := mp.q.Query(ctx, mp.selectAllSQL)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "findAll " + mp.m.Table, Err: err}
	}
	defer rows.Close()

	list := make([]*E, 0)
	for rows.Next() {
		e := new(E)
		if err := rows.Scan(mp.scanRefs(e)...); err != nil {
			return nil, &domain.PersistenceError{Op: "scan " + mp.m.Table, Err: err}
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "findAll " + mp.m.Table, Err: err}
	}
	return list, nil
}

// FindByID devuelve la entidad con esa clave primaria, o (nil, nil) si no existe.
func (mp *Mapper[E]) FindByID(ctx context.Context, id int64) (*E, error) {
	e := new(E)
	err := mp.q.QueryRow(ctx, mp.selectByIDSQL, id).Scan(mp.scanRefs(e)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, &domain.PersistenceError{Op: "findById " + mp.m.Table, Err: err}
	}
	return e, nil
}

// Insert persiste la entidad. Con clave generada, lee el RETURNING y escribe
// la clave en el campo PK de la entidad (mutación in situ visible para el
// caller); con clave aportada por el caller, la incluye en el INSERT.
func (mp *Mapper[E]) Insert(ctx context.Context, e *E) error {
	args := mp.insertArgs(e)
	if mp.m.PKGenerated {
		if err := mp.q.QueryRow(ctx, mp.insertSQL, args...).Scan(mp.m.PK.Ref(e)); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &domain.PersistenceError{Op: "insert " + mp.m.Table, Err: errors.New("no se obtuvo la clave generada")}
			}
			return mp.writeError("insert "+mp.m.Table, err)
		}
		return nil
	}
	tag, err := mp.q.Exec(ctx, mp.insertSQL, args...)
	if err != nil {
		return mp.writeError("insert "+mp.m.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.PersistenceError{Op: "insert " + mp.m.Table, Err: errors.New("ninguna fila insertada")}
	}
	return nil
}

// Update reescribe todas las columnas mapeadas (salvo la PK) de la fila cuya
// clave primaria coincida con la de la entidad.
func (mp *Mapper[E]) Update(ctx context.Context, e *E) error {
	args := make([]any, 0, len(mp.m.Columns)+1)
	for _, c := range mp.m.Columns {
		args = append(args, c.Ref(e))
	}
	args = append(args, mp.m.PK.Ref(e))

	tag, err := mp.q.Exec(ctx, mp.updateSQL, args...)
	if err != nil {
		return mp.writeError("update "+mp.m.Table, err)
	}
	// PostgreSQL cuenta la fila como afectada aunque los valores nuevos
	// igualen a los existentes: cero filas significa que la entidad no existe.
	if tag.RowsAffected() == 0 {
		return &domain.PersistenceError{Op: "update " + mp.m.Table, Err: domain.ErrNotFound}
	}
	return nil
}

// Delete borra por clave primaria e indica si se eliminó alguna fila.
// Una violación de clave foránea (la entidad sigue referenciada) se reporta
// como ConstraintError.
func (mp *Mapper[E]) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := mp.q.Exec(ctx, mp.deleteSQL, id)
	if err != nil {
		return false, mp.writeError("delete "+mp.m.Table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// scanRefs punteros a los campos de e en el orden del SELECT (PK primero).
func (mp *Mapper[E]) scanRefs(e *E) []any {
	refs := make([]any, 0, len(mp.m.Columns)+1)
	refs = append(refs, mp.m.PK.Ref(e))
	for _, c := range mp.m.Columns {
		refs = append(refs, c.Ref(e))
	}
	return refs
}

// insertArgs argumentos del INSERT: la PK solo si la aporta el caller.
func (mp *Mapper[E]) insertArgs(e *E) []any {
	args := make([]any, 0, len(mp.m.Columns)+1)
	if !mp.m.PKGenerated {
		args = append(args, mp.m.PK.Ref(e))
	}
	for _, c := range mp.m.Columns {
		args = append(args, c.Ref(e))
	}
	return args
}

// writeError clasifica errores de escritura: violaciones de integridad
// (clase 23) como ConstraintError, el resto como PersistenceError.
func (mp *Mapper[E]) writeError(op string, err error) error {
	if code, ok := constraintCode(err); ok {
		return &domain.ConstraintError{Op: op, Code: code, Err: err}
	}
	return &domain.PersistenceError{Op: op, Err: err}
}

func buildInsertSQL[E any](table, pk string, m Mapping[E]) string {
	names := make([]string, 0, len(m.Columns)+1)
	if !m.PKGenerated {
		names = append(names, pk)
	}
	for _, c := range m.Columns {
		names = append(names, quoteIdent(c.Name))
	}
	placeholders := make([]string, len(names))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(names, ", "), strings.Join(placeholders, ", "))
	if m.PKGenerated {
		sql += " RETURNING " + pk
	}
	return sql
}

func buildUpdateSQL[E any](table, pk string, m Mapping[E]) string {
	sets := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		sets[i] = fmt.Sprintf("%s = $%d", quoteIdent(c.Name), i+1)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(sets, ", "), pk, len(m.Columns)+1)
}

// quoteIdent entrecomilla un identificador para PostgreSQL.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
