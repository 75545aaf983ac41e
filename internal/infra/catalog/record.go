// Package catalog reads destination records from the national tourism registry.
package catalog

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"destinos/internal/domain/entity"

	"github.com/pkg/errors"
)

// flexInt decodes registry counters published either as numbers or as numeric
// strings such as "12" or "12.0". Anything else decodes to nil.
type flexInt struct {
	value *int
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	f.value = nil
	raw := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if raw == "" || raw == "null" {
		return nil
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	v := int(n)
	f.value = &v

	return nil
}

// record is one row of the registry open-data resource.
type record struct {
	RNT          string  `json:"rnt"`
	Category     string  `json:"categoria"`
	Subcategory  string  `json:"subcategoria"`
	Department   string  `json:"nomdep"`
	Municipality string  `json:"nombre_muni"`
	Name         string  `json:"razon_social"`
	Rooms        flexInt `json:"habitaciones"`
	Beds         flexInt `json:"camas"`
	Employees    flexInt `json:"empleados"`
}

func (r *record) toEntity() *entity.Destination {
	return &entity.Destination{
		ID:           strings.TrimSpace(r.RNT),
		Category:     strings.TrimSpace(r.Category),
		Subcategory:  strings.TrimSpace(r.Subcategory),
		Department:   strings.TrimSpace(r.Department),
		Municipality: strings.TrimSpace(r.Municipality),
		Name:         strings.TrimSpace(r.Name),
		Rooms:        r.Rooms.value,
		Beds:         r.Beds.value,
		Employees:    r.Employees.value,
	}
}

// decodeRecords reads a JSON array of registry rows. Rows without an RNT number are dropped.
func decodeRecords(r io.Reader) ([]*entity.Destination, error) {
	var rows []record
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, errors.Wrap(err, "failed to decode catalog records")
	}

	destinations := make([]*entity.Destination, 0, len(rows))
	for i := range rows {
		d := rows[i].toEntity()
		if d.ID == "" {
			continue
		}
		destinations = append(destinations, d)
	}

	return destinations, nil
}
