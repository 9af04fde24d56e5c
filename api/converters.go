package api

import (
	"hallApi/services/composer"
	"hallApi/services/customer"
	"hallApi/services/person"
	"hallApi/services/team"
	"hallApi/services/user"
	"hallApi/utils"
)

func convertSlice[S any, T any](items []S, convert func(S) T) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		result = append(result, convert(item))
	}
	return result
}

func ToComposer(c composer.Composer) Composer {
	return Composer{
		Id:          c.ID,
		ComposerId:  c.ComposerID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		DateCreated: c.DateCreated,
	}
}

func ToComposers(composers []composer.Composer) []Composer {
	return convertSlice(composers, ToComposer)
}

func FromComposerInput(in ComposerInput) composer.Composer {
	return composer.Composer{
		ComposerID:  utils.FromPointer(in.ComposerId),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateCreated: utils.FromPointer(in.DateCreated),
	}
}

func FromComposerUpdate(in ComposerUpdate) composer.Patch {
	return composer.Patch{
		ComposerID:  utils.FromPointer(in.ComposerId),
		FirstName:   utils.FromPointer(in.FirstName),
		LastName:    utils.FromPointer(in.LastName),
		DateCreated: utils.FromPointer(in.DateCreated),
	}
}

func ToLineItem(l customer.LineItem) LineItem {
	return LineItem{
		Name:     utils.ToPointer(l.Name),
		Price:    utils.ToPointer(l.Price),
		Quantity: utils.ToPointer(l.Quantity),
	}
}

func FromLineItem(l LineItem) customer.LineItem {
	return customer.LineItem{
		Name:     utils.FromPointer(l.Name),
		Price:    utils.FromPointer(l.Price),
		Quantity: utils.FromPointer(l.Quantity),
	}
}

func ToInvoice(i customer.Invoice) Invoice {
	return Invoice{
		Subtotal:    utils.ToPointer(i.Subtotal),
		Tax:         utils.ToPointer(i.Tax),
		DateCreated: utils.ToPointer(i.DateCreated),
		DateShipped: utils.ToPointer(i.DateShipped),
		LineItems:   utils.ToPointer(convertSlice(i.LineItems, ToLineItem)),
	}
}

func ToInvoices(invoices []customer.Invoice) []Invoice {
	return convertSlice(invoices, ToInvoice)
}

func FromInvoice(i Invoice) customer.Invoice {
	return customer.Invoice{
		Subtotal:    utils.FromPointer(i.Subtotal),
		Tax:         utils.FromPointer(i.Tax),
		DateCreated: utils.FromPointer(i.DateCreated),
		DateShipped: utils.FromPointer(i.DateShipped),
		LineItems:   convertSlice(utils.FromPointer(i.LineItems), FromLineItem),
	}
}

func ToCustomer(c customer.Customer) Customer {
	return Customer{
		Id:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		UserName:  c.UserName,
		Invoices:  ToInvoices(c.Invoices),
	}
}

func ToCustomers(customers []customer.Customer) []Customer {
	return convertSlice(customers, ToCustomer)
}

func FromCustomerInput(in CustomerInput) customer.Customer {
	return customer.Customer{
		FirstName: utils.FromPointer(in.FirstName),
		LastName:  utils.FromPointer(in.LastName),
		UserName:  in.UserName,
		Invoices:  convertSlice(utils.FromPointer(in.Invoices), FromInvoice),
	}
}

func ToPerson(p person.Person) Person {
	return Person{
		Id:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		BirthDate: p.BirthDate,
		Roles: convertSlice(p.Roles, func(r person.Role) Role {
			return Role{Text: utils.ToPointer(r.Text)}
		}),
		Dependents: convertSlice(p.Dependents, func(d person.Dependent) Dependent {
			return Dependent{FirstName: utils.ToPointer(d.FirstName), LastName: utils.ToPointer(d.LastName)}
		}),
	}
}

func ToPersons(persons []person.Person) []Person {
	return convertSlice(persons, ToPerson)
}

func FromPersonInput(in PersonInput) person.Person {
	return person.Person{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		BirthDate: utils.FromPointer(in.BirthDate),
		Roles: convertSlice(utils.FromPointer(in.Roles), func(r Role) person.Role {
			return person.Role{Text: utils.FromPointer(r.Text)}
		}),
		Dependents: convertSlice(utils.FromPointer(in.Dependents), func(d Dependent) person.Dependent {
			return person.Dependent{FirstName: utils.FromPointer(d.FirstName), LastName: utils.FromPointer(d.LastName)}
		}),
	}
}

func ToPlayer(p team.Player) Player {
	return Player{
		PlayerId:     p.PlayerID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Position:     utils.ToPointer(p.Position),
		HireDate:     utils.ToPointer(p.HireDate),
		AnnualSalary: utils.ToPointer(p.AnnualSalary),
	}
}

func ToPlayers(players []team.Player) []Player {
	return convertSlice(players, ToPlayer)
}

func FromPlayer(p Player) team.Player {
	return team.Player{
		PlayerID:     p.PlayerId,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Position:     utils.FromPointer(p.Position),
		HireDate:     utils.FromPointer(p.HireDate),
		AnnualSalary: utils.FromPointer(p.AnnualSalary),
	}
}

func ToTeam(t team.Team) Team {
	return Team{
		Id:            t.ID,
		Name:          t.Name,
		HomeField:     t.HomeField,
		Phone:         t.Phone,
		Email:         t.Email,
		AdmissionDate: t.AdmissionDate,
		Mascot:        t.Mascot,
		Players:       ToPlayers(t.Players),
	}
}

func ToTeams(teams []team.Team) []Team {
	return convertSlice(teams, ToTeam)
}

func FromTeamInput(in TeamInput) team.Team {
	return team.Team{
		Name:          in.Name,
		HomeField:     utils.FromPointer(in.HomeField),
		Phone:         utils.FromPointer(in.Phone),
		Email:         utils.FromPointer(in.Email),
		AdmissionDate: utils.FromPointer(in.AdmissionDate),
		Mascot:        utils.FromPointer(in.Mascot),
		Players:       convertSlice(utils.FromPointer(in.Players), FromPlayer),
	}
}

// ToUser never carries the password hash.
func ToUser(u user.User) User {
	return User{
		Id:             u.ID,
		UserName:       u.UserName,
		EmailAddresses: utils.NonNil(u.EmailAddresses),
		CreatedAt:      u.CreatedAt,
	}
}

func FromSignUpRequest(in SignUpRequest) user.SignUp {
	return user.SignUp{
		UserName:       in.UserName,
		Password:       in.Password,
		EmailAddresses: utils.FromPointer(in.EmailAddresses),
	}
}
