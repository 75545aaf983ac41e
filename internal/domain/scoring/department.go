// Package scoring holds the pure affinity functions used by the recommender:
// profile-to-profile similarity, profile-to-destination content score and the
// department canonicalization that both share.
package scoring

import (
	"strings"
	"unicode"

	"destinos/internal/domain/entity"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// departmentAliases maps equivalent canonical spellings onto one department key.
var departmentAliases = map[string]string{
	"BOGOTA":          "BOGOTADC",
	"BOGOTADC":        "BOGOTADC",
	"SANTAFEDEBOGOTA": "BOGOTADC",
}

var departmentDisplay = map[string]string{
	"BOYACA":       "Boyacá",
	"CUNDINAMARCA": "Cundinamarca",
	"BOGOTADC":     "Bogotá D.C.",
}

var categoryDescriptions = map[string]string{
	"ALOJAMIENTO HOTELERO": "Hoteles y hospedajes",
	"ALOJAMIENTO RURAL":    "Turismo rural y ecológico",
	"AGENCIA DE VIAJES":    "Servicios de viaje y turismo",
	"GUIA DE TURISMO":      "Guías turísticos profesionales",
	"TRANSPORTE TURISTICO": "Transporte especializado",
}

// Fold removes diacritics and upper-cases s. Inner whitespace is preserved.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	return strings.ToUpper(strings.TrimSpace(out))
}

// CanonicalDepartment returns the comparison key for a department name.
// Accents, whitespace and punctuation are dropped, so "Boyacá" and "BOYACA" agree,
// and known aliases collapse to one key. Empty input yields "".
func CanonicalDepartment(name string) string {
	folded := Fold(name)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	key := b.String()
	if alias, ok := departmentAliases[key]; ok {
		return alias
	}

	return key
}

// SameDepartment reports whether two department names refer to the same department.
func SameDepartment(a, b string) bool {
	ca := CanonicalDepartment(a)

	return ca != "" && ca == CanonicalDepartment(b)
}

// DepartmentDisplay returns the human-readable name of a department.
func DepartmentDisplay(name string) string {
	if display, ok := departmentDisplay[CanonicalDepartment(name)]; ok {
		return display
	}

	return strings.TrimSpace(name)
}

// CategoryDescription returns the descriptive label for a registry category,
// or the category itself when it has none.
func CategoryDescription(category string) string {
	if desc, ok := categoryDescriptions[Fold(category)]; ok {
		return desc
	}

	return strings.TrimSpace(category)
}

// Annotate returns a copy of d with trimmed text fields and derived display fields.
// d itself is never modified.
func Annotate(d *entity.Destination) *entity.Destination {
	cp := d.Clone()
	if cp == nil {
		return nil
	}

	cp.ID = strings.TrimSpace(cp.ID)
	cp.Category = strings.TrimSpace(cp.Category)
	cp.Subcategory = strings.TrimSpace(cp.Subcategory)
	cp.Department = strings.TrimSpace(cp.Department)
	cp.Municipality = strings.TrimSpace(cp.Municipality)
	cp.Name = strings.TrimSpace(cp.Name)

	cp.DepartmentDisplay = DepartmentDisplay(cp.Department)
	cp.CategoryDescription = CategoryDescription(cp.Category)
	switch {
	case cp.Municipality != "" && cp.DepartmentDisplay != "":
		cp.Location = cp.Municipality + ", " + cp.DepartmentDisplay
	case cp.Municipality != "":
		cp.Location = cp.Municipality
	default:
		cp.Location = cp.DepartmentDisplay
	}

	return cp
}
