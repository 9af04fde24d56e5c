package composer

type Composer struct {
	ID          string `json:"id" firestore:"id" bson:"_id"`
	ComposerID  int64  `json:"composerId" firestore:"composerId" bson:"composerId"`
	FirstName   string `json:"firstName" firestore:"firstName" bson:"firstName"`
	LastName    string `json:"lastName" firestore:"lastName" bson:"lastName"`
	DateCreated string `json:"dateCreated" firestore:"dateCreated" bson:"dateCreated"`
}

func (c *Composer) DocumentID() string      { return c.ID }
func (c *Composer) SetDocumentID(id string) { c.ID = id }

// Patch is a partial update. Zero valued fields are left untouched; the structs tags
// name the stored fields they overwrite.
type Patch struct {
	ComposerID  int64  `structs:"composerId,omitempty"`
	FirstName   string `structs:"firstName,omitempty"`
	LastName    string `structs:"lastName,omitempty"`
	DateCreated string `structs:"dateCreated,omitempty"`
}
