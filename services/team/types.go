package team

type Team struct {
	ID            string   `json:"id" firestore:"id" bson:"_id"`
	Name          string   `json:"name" firestore:"name" bson:"name"`
	HomeField     string   `json:"homeField" firestore:"homeField" bson:"homeField"`
	Phone         string   `json:"phone" firestore:"phone" bson:"phone"`
	Email         string   `json:"email" firestore:"email" bson:"email"`
	AdmissionDate string   `json:"admissionDate" firestore:"admissionDate" bson:"admissionDate"`
	Mascot        string   `json:"mascot" firestore:"mascot" bson:"mascot"`
	Players       []Player `json:"players" firestore:"players" bson:"players"`
}

func (t *Team) DocumentID() string      { return t.ID }
func (t *Team) SetDocumentID(id string) { t.ID = id }

type Player struct {
	PlayerID     string  `json:"playerId" firestore:"playerId" bson:"playerId"`
	FirstName    string  `json:"firstName" firestore:"firstName" bson:"firstName"`
	LastName     string  `json:"lastName" firestore:"lastName" bson:"lastName"`
	Position     string  `json:"position" firestore:"position" bson:"position"`
	HireDate     string  `json:"hireDate" firestore:"hireDate" bson:"hireDate"`
	AnnualSalary float64 `json:"annualSalary" firestore:"annualSalary" bson:"annualSalary"`
}
