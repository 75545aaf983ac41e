package entity

// Tier is a named bracket of cumulative points. Max is inclusive; a nil Max is unbounded.
type Tier struct {
	Name     string
	Min      int
	Max      *int
	Benefits []string
}

func bound(v int) *int { return &v }

// Tiers is ordered ascending by Min.
var Tiers = []Tier{
	{Name: "Explorer", Min: 0, Max: bound(49), Benefits: []string{"Personalized recommendations"}},
	{Name: "Traveler", Min: 50, Max: bound(149), Benefits: []string{"Personalized recommendations", "Early access to new destinations"}},
	{Name: "Adventurer", Min: 150, Max: bound(299), Benefits: []string{"Personalized recommendations", "Early access to new destinations", "Partner discounts"}},
	{Name: "Ambassador", Min: 300, Max: bound(499), Benefits: []string{"Personalized recommendations", "Early access to new destinations", "Partner discounts", "Featured reviews"}},
	{Name: "Legend", Min: 500, Benefits: []string{"Personalized recommendations", "Early access to new destinations", "Partner discounts", "Featured reviews", "Exclusive experiences"}},
}

// Level describes where a point total sits in the tier table.
type Level struct {
	CurrentTier  string   `json:"current_level"`
	Benefits     []string `json:"benefits"`
	PointsToNext int      `json:"points_to_next"`
	NextTier     *string  `json:"next_level"`
}

// LevelFor scans the tier table ascending and returns the first tier containing total.
// Totals below the first tier (negative balances) report the first tier.
func LevelFor(total int) Level {
	idx := 0
	for i, t := range Tiers {
		if total >= t.Min && (t.Max == nil || total <= *t.Max) {
			idx = i

			break
		}
	}

	current := Tiers[idx]
	level := Level{
		CurrentTier: current.Name,
		Benefits:    append([]string(nil), current.Benefits...),
	}
	if idx+1 < len(Tiers) {
		next := Tiers[idx+1]
		name := next.Name
		level.NextTier = &name
		level.PointsToNext = next.Min - total
	}

	return level
}
