package person

type Person struct {
	ID         string      `json:"id" firestore:"id" bson:"_id"`
	FirstName  string      `json:"firstName" firestore:"firstName" bson:"firstName"`
	LastName   string      `json:"lastName" firestore:"lastName" bson:"lastName"`
	BirthDate  string      `json:"birthDate" firestore:"birthDate" bson:"birthDate"`
	Roles      []Role      `json:"roles" firestore:"roles" bson:"roles"`
	Dependents []Dependent `json:"dependents" firestore:"dependents" bson:"dependents"`
}

func (p *Person) DocumentID() string      { return p.ID }
func (p *Person) SetDocumentID(id string) { p.ID = id }

type Role struct {
	Text string `json:"text" firestore:"text" bson:"text"`
}

type Dependent struct {
	FirstName string `json:"firstName" firestore:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" firestore:"lastName" bson:"lastName"`
}
