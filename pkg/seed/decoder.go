package seed

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/masternet-io/masternet-engine/pkg/jsonutil"
	"github.com/masternet-io/masternet-engine/pkg/models"
)

// DecodeWarning records a fixture field that failed to parse and was replaced
// with a default. Warnings never abort decoding of the batch.
type DecodeWarning struct {
	Group  string
	Record int
	Field  string
	Reason string
}

func (w DecodeWarning) String() string {
	return fmt.Sprintf("%s[%d].%s: %s", w.Group, w.Record, w.Field, w.Reason)
}

// DecodedCurso is a course plus the forward-reference ID lists extracted from
// its fixture record. The IDs are syntactically valid but unresolved; matching
// them against persisted rows is the reference index's job.
type DecodedCurso struct {
	Curso         *models.Curso
	InstructorIDs []uuid.UUID
	PrecioIDs     []uuid.UUID
}

// Fixture record shapes. Every field is kept raw so per-field coercion can
// substitute defaults instead of failing the record.
type precioRecord struct {
	ID              json.RawMessage `json:"Id"`
	Nombre          json.RawMessage `json:"Nombre"`
	PrecioActual    json.RawMessage `json:"PrecioActual"`
	PrecioPromocion json.RawMessage `json:"PrecioPromocion"`
}

type instructorRecord struct {
	ID        json.RawMessage `json:"Id"`
	Nombre    json.RawMessage `json:"Nombre"`
	Apellidos json.RawMessage `json:"Apellidos"`
	Grado     json.RawMessage `json:"Grado"`
}

type cursoRecord struct {
	ID               json.RawMessage   `json:"Id"`
	Titulo           json.RawMessage   `json:"Titulo"`
	Descripcion      json.RawMessage   `json:"Descripcion"`
	FechaPublicacion json.RawMessage   `json:"FechaPublicacion"`
	Precios          []json.RawMessage `json:"Precios"`
	Instructores     []json.RawMessage `json:"Instructores"`
}

type calificacionRecord struct {
	ID         json.RawMessage `json:"Id"`
	Alumno     json.RawMessage `json:"Alumno"`
	Comentario json.RawMessage `json:"Comentario"`
	Puntaje    json.RawMessage `json:"Puntaje"`
	CursoID    json.RawMessage `json:"CursoId"`
}

// DecodePrecios decodes the precios fixture document.
func DecodePrecios(raw []byte) ([]*models.Precio, []DecodeWarning, error) {
	var records []precioRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, nil, fmt.Errorf("failed to decode precios fixture: %w", err)
	}

	var warnings []DecodeWarning
	precios := make([]*models.Precio, 0, len(records))
	for i, rec := range records {
		p := &models.Precio{
			ID:              decodeID(GroupPrecios, i, rec.ID, &warnings),
			Nombre:          decodeBoundedString(GroupPrecios, i, "Nombre", rec.Nombre, models.PrecioNombreMaxLen, &warnings),
			PrecioActual:    decodeDecimal(GroupPrecios, i, "PrecioActual", rec.PrecioActual, &warnings),
			PrecioPromocion: decodeDecimal(GroupPrecios, i, "PrecioPromocion", rec.PrecioPromocion, &warnings),
		}
		precios = append(precios, p)
	}
	return precios, warnings, nil
}

// DecodeInstructores decodes the instructores fixture document.
func DecodeInstructores(raw []byte) ([]*models.Instructor, []DecodeWarning, error) {
	var records []instructorRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, nil, fmt.Errorf("failed to decode instructores fixture: %w", err)
	}

	var warnings []DecodeWarning
	instructores := make([]*models.Instructor, 0, len(records))
	for i, rec := range records {
		ins := &models.Instructor{
			ID:        decodeID(GroupInstructores, i, rec.ID, &warnings),
			Nombre:    jsonutil.FlexibleStringValue(rec.Nombre),
			Apellidos: jsonutil.FlexibleStringValue(rec.Apellidos),
			Grado:     jsonutil.FlexibleStringValue(rec.Grado),
		}
		instructores = append(instructores, ins)
	}
	return instructores, warnings, nil
}

// DecodeCursos decodes the cursos fixture document, extracting (but not
// resolving) the instructor and price forward-reference lists. Entries that do
// not parse as identifiers are dropped with a warning.
func DecodeCursos(raw []byte) ([]*DecodedCurso, []DecodeWarning, error) {
	var records []cursoRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, nil, fmt.Errorf("failed to decode cursos fixture: %w", err)
	}

	var warnings []DecodeWarning
	cursos := make([]*DecodedCurso, 0, len(records))
	for i, rec := range records {
		dc := &DecodedCurso{
			Curso: &models.Curso{
				ID:               decodeID(GroupCursos, i, rec.ID, &warnings),
				Titulo:           decodeOptionalString(rec.Titulo),
				Descripcion:      decodeOptionalString(rec.Descripcion),
				FechaPublicacion: decodeOptionalDate(GroupCursos, i, rec.FechaPublicacion, &warnings),
			},
		}
		dc.PrecioIDs = decodeIDList(GroupCursos, i, "Precios", rec.Precios, &warnings)
		dc.InstructorIDs = decodeIDList(GroupCursos, i, "Instructores", rec.Instructores, &warnings)
		cursos = append(cursos, dc)
	}
	return cursos, warnings, nil
}

// DecodeCalificaciones decodes the calificaciones fixture document. A rating
// whose CursoId does not parse keeps uuid.Nil; resolution against persisted
// courses later drops it, since a rating must not exist without its course.
func DecodeCalificaciones(raw []byte) ([]*models.Calificacion, []DecodeWarning, error) {
	var records []calificacionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, nil, fmt.Errorf("failed to decode calificaciones fixture: %w", err)
	}

	var warnings []DecodeWarning
	calificaciones := make([]*models.Calificacion, 0, len(records))
	for i, rec := range records {
		ca := &models.Calificacion{
			ID:         decodeID(GroupCalificaciones, i, rec.ID, &warnings),
			Alumno:     jsonutil.FlexibleStringValue(rec.Alumno),
			Comentario: jsonutil.FlexibleStringValue(rec.Comentario),
		}

		if puntaje, ok := jsonutil.FlexibleIntValue(rec.Puntaje); ok {
			ca.Puntaje = puntaje
		} else {
			warnings = append(warnings, DecodeWarning{
				Group: GroupCalificaciones, Record: i, Field: "Puntaje",
				Reason: "missing or non-numeric score, defaulted to 0",
			})
		}

		if id, err := uuid.Parse(jsonutil.FlexibleStringValue(rec.CursoID)); err == nil {
			ca.CursoID = id
		} else {
			warnings = append(warnings, DecodeWarning{
				Group: GroupCalificaciones, Record: i, Field: "CursoId",
				Reason: "missing or unparsable course identifier",
			})
		}

		calificaciones = append(calificaciones, ca)
	}
	return calificaciones, warnings, nil
}

// decodeID parses an identifier field, generating a fresh one (with a warning)
// when the fixture value is missing or unparsable. Never a hard error.
func decodeID(group string, record int, raw json.RawMessage, warnings *[]DecodeWarning) uuid.UUID {
	s := jsonutil.FlexibleStringValue(raw)
	if s == "" {
		return uuid.New()
	}
	id, err := uuid.Parse(s)
	if err != nil {
		*warnings = append(*warnings, DecodeWarning{
			Group: group, Record: record, Field: "Id",
			Reason: fmt.Sprintf("unparsable identifier %q, generated a new one", s),
		})
		return uuid.New()
	}
	return id
}

func decodeIDList(group string, record int, field string, raws []json.RawMessage, warnings *[]DecodeWarning) []uuid.UUID {
	if len(raws) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(raws))
	for _, raw := range raws {
		s := jsonutil.FlexibleStringValue(raw)
		id, err := uuid.Parse(s)
		if err != nil {
			*warnings = append(*warnings, DecodeWarning{
				Group: group, Record: record, Field: field,
				Reason: fmt.Sprintf("dropped unparsable reference %q", s),
			})
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func decodeOptionalString(raw json.RawMessage) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	s := jsonutil.FlexibleStringValue(raw)
	return &s
}

// dateLayouts are tried in order when parsing a publication date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// decodeOptionalDate yields nil for absent or unparsable dates rather than a
// decode failure.
func decodeOptionalDate(group string, record int, raw json.RawMessage, warnings *[]DecodeWarning) *time.Time {
	s := jsonutil.FlexibleStringValue(raw)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	*warnings = append(*warnings, DecodeWarning{
		Group: group, Record: record, Field: "FechaPublicacion",
		Reason: fmt.Sprintf("unparsable date %q, left unset", s),
	})
	return nil
}

// decodeDecimal parses a fixed-point price field and normalizes it to exactly
// two fractional digits.
func decodeDecimal(group string, record int, field string, raw json.RawMessage, warnings *[]DecodeWarning) decimal.Decimal {
	if len(raw) == 0 || string(raw) == "null" {
		*warnings = append(*warnings, DecodeWarning{
			Group: group, Record: record, Field: field,
			Reason: "missing price, defaulted to 0.00",
		})
		return decimal.Zero.Round(2)
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		*warnings = append(*warnings, DecodeWarning{
			Group: group, Record: record, Field: field,
			Reason: fmt.Sprintf("unparsable price %s, defaulted to 0.00", string(raw)),
		})
		return decimal.Zero.Round(2)
	}
	return d.Round(2)
}

// decodeBoundedString truncates over-long values to the column limit.
// The limit counts characters, matching VARCHAR(n); truncating on a byte
// index could split a multi-byte rune and produce invalid UTF-8, which the
// store rejects.
func decodeBoundedString(group string, record int, field string, raw json.RawMessage, maxLen int, warnings *[]DecodeWarning) string {
	s := jsonutil.FlexibleStringValue(raw)
	if utf8.RuneCountInString(s) > maxLen {
		*warnings = append(*warnings, DecodeWarning{
			Group: group, Record: record, Field: field,
			Reason: fmt.Sprintf("value longer than %d characters, truncated", maxLen),
		})
		s = string([]rune(s)[:maxLen])
	}
	return s
}
