package fidelius

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	werrors "github.com/winter-telescope/winterapi/internal/errors"
)

var validate = validator.New()

// Credentials is the decrypted logical state of the secrets file.
// Password is meaningful only when User is set; SetUser writes both together.
type Credentials struct {
	User     *string            `json:"user"`
	Password *string            `json:"password"`
	Programs map[string]Program `json:"programs"`
}

// ProgramNames returns the known program names in lexicographic order.
func (c *Credentials) ProgramNames() []string {
	names := make([]string, 0, len(c.Programs))
	for name := range c.Programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Program is one authorized observing program. Progname and ProgKey are the
// two fields the client reads; everything else the server sends (PI name,
// allocation limits, dates) is carried through Extra untouched. Puid is a
// server-internal identifier and is stripped before the record is persisted.
type Program struct {
	Progname string `validate:"required"`
	ProgKey  string `validate:"required"`
	Puid     any    `validate:"-"`
	Extra    map[string]any
}

// Validate checks the record has the fields the client depends on.
func (p Program) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("program record %q: %v: %w", p.Progname, err, werrors.ErrInvalidProgram)
	}
	return nil
}

// MarshalJSON flattens the record back into the wire shape, with the opaque
// server fields alongside progname and prog_key.
func (p Program) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(p.Extra)+3)
	for k, v := range p.Extra {
		fields[k] = v
	}
	fields["progname"] = p.Progname
	fields["prog_key"] = p.ProgKey
	if p.Puid != nil {
		fields["puid"] = p.Puid
	}
	return json.Marshal(fields)
}

// UnmarshalJSON lifts progname, prog_key and puid out of the object and
// keeps the remaining fields opaque.
func (p *Program) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if v, ok := fields["progname"].(string); ok {
		p.Progname = v
	}
	if v, ok := fields["prog_key"].(string); ok {
		p.ProgKey = v
	}
	p.Puid = fields["puid"]

	delete(fields, "progname")
	delete(fields, "prog_key")
	delete(fields, "puid")
	if len(fields) > 0 {
		p.Extra = fields
	} else {
		p.Extra = nil
	}
	return nil
}

// ProgramFromWire builds a Program from a decoded server response body.
func ProgramFromWire(fields map[string]any) (Program, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return Program{}, err
	}
	var p Program
	if err := json.Unmarshal(raw, &p); err != nil {
		return Program{}, err
	}
	return p, nil
}
