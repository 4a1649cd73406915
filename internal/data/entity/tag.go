package entity

// TagType groups tags the way governors classify historic sites and tourists
// state preferences. Free-form beyond the known values.
type TagType string

const (
	TagTypeMonument   TagType = "monument"
	TagTypeMuseum     TagType = "museum"
	TagTypeReligious  TagType = "religious_site"
	TagTypePalace     TagType = "palace"
	TagTypePreference TagType = "preference"
)

type Tag struct {
	BaseNoDelete
	Name string  `db:"name"`
	Type TagType `db:"type"`
}
