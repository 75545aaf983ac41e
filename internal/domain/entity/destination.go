package entity

// Destination is a tourism provider record from the national tourism registry (RNT).
// Records belong to the catalog; the engine only ever annotates copies of them.
type Destination struct {
	ID           string `json:"rnt"`
	Category     string `json:"categoria"`
	Subcategory  string `json:"subcategoria"`
	Department   string `json:"nomdep"`
	Municipality string `json:"nombre_muni"`
	Name         string `json:"razon_social"`
	Rooms        *int   `json:"habitaciones,omitempty"`
	Beds         *int   `json:"camas,omitempty"`
	Employees    *int   `json:"empleados,omitempty"`

	// Derived fields, filled on annotated copies only.
	DepartmentDisplay   string `json:"department_display,omitempty"`
	CategoryDescription string `json:"category_description,omitempty"`
	Location            string `json:"location,omitempty"`
	Reason              string `json:"recommendation_reason,omitempty"`
	InteractionCount    int    `json:"interaction_count,omitempty"`
}

// Clone returns a shallow copy safe to annotate.
func (d *Destination) Clone() *Destination {
	if d == nil {
		return nil
	}
	cp := *d

	return &cp
}
