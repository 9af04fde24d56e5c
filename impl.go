package main

import (
	"context"

	"hallApi/api"
	"hallApi/services/composer"
	"hallApi/services/customer"
	"hallApi/services/person"
	"hallApi/services/session"
	"hallApi/services/team"
	"hallApi/services/user"
	"hallApi/validator"
)

// ensure that we've conformed to the `StrictServerInterface` with a compile-time check
var _ api.StrictServerInterface = (*Server)(nil)

const loggedInMessage = "User logged in"

type Server struct {
	ComposerService composer.Service
	CustomerService customer.Service
	PersonService   person.Service
	TeamService     team.Service
	UserService     user.Service
	Tokens          *session.Tokens
}

func NewServer(
	composerService composer.Service,
	customerService customer.Service,
	personService person.Service,
	teamService team.Service,
	userService user.Service,
	tokens *session.Tokens,
) Server {
	return Server{
		ComposerService: composerService,
		CustomerService: customerService,
		PersonService:   personService,
		TeamService:     teamService,
		UserService:     userService,
		Tokens:          tokens,
	}
}

func (s Server) ListComposers(ctx context.Context, request api.ListComposersRequestObject) (api.ListComposersResponseObject, error) {
	composers, err := s.ComposerService.List(ctx)
	if err != nil {
		_, body := classify(ctx, "listComposers", err)
		return api.ListComposers500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
	}
	return api.ListComposers200JSONResponse(api.ToComposers(composers)), nil
}

func (s Server) CreateComposer(ctx context.Context, request api.CreateComposerRequestObject) (api.CreateComposerResponseObject, error) {
	created, err := s.ComposerService.Create(ctx, api.FromComposerInput(*request.Body))
	if err != nil {
		switch o, body := classify(ctx, "createComposer", err); o {
		case validationError:
			return api.CreateComposer400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		default:
			return api.CreateComposer500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.CreateComposer200JSONResponse(api.ToComposer(*created)), nil
}

func (s Server) GetComposer(ctx context.Context, request api.GetComposerRequestObject) (api.GetComposerResponseObject, error) {
	c, err := s.ComposerService.Get(ctx, request.Id)
	if err != nil {
		switch o, body := classify(ctx, "getComposer", err); o {
		case notFound:
			return api.GetComposer404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		default:
			return api.GetComposer500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.GetComposer200JSONResponse(api.ToComposer(*c)), nil
}

func (s Server) UpdateComposer(ctx context.Context, request api.UpdateComposerRequestObject) (api.UpdateComposerResponseObject, error) {
	updated, err := s.ComposerService.Update(ctx, request.Id, api.FromComposerUpdate(*request.Body))
	if err != nil {
		switch o, body := classify(ctx, "updateComposer", err); o {
		case validationError:
			return api.UpdateComposer400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		case notFound:
			return api.UpdateComposer404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		default:
			return api.UpdateComposer500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.UpdateComposer200JSONResponse(api.ToComposer(*updated)), nil
}

func (s Server) DeleteComposer(ctx context.Context, request api.DeleteComposerRequestObject) (api.DeleteComposerResponseObject, error) {
	removed, err := s.ComposerService.Delete(ctx, request.Id)
	if err != nil {
		switch o, body := classify(ctx, "deleteComposer", err); o {
		case notFound:
			return api.DeleteComposer404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		default:
			return api.DeleteComposer500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.DeleteComposer200JSONResponse(api.ToComposer(*removed)), nil
}

func (s Server) ListCustomers(ctx context.Context, request api.ListCustomersRequestObject) (api.ListCustomersResponseObject, error) {
	customers, err := s.CustomerService.List(ctx)
	if err != nil {
		_, body := classify(ctx, "listCustomers", err)
		return api.ListCustomers500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
	}
	return api.ListCustomers200JSONResponse(api.ToCustomers(customers)), nil
}

func (s Server) CreateCustomer(ctx context.Context, request api.CreateCustomerRequestObject) (api.CreateCustomerResponseObject, error) {
	created, err := s.CustomerService.Create(ctx, api.FromCustomerInput(*request.Body))
	if err != nil {
		switch o, body := classify(ctx, "createCustomer", err); o {
		case validationError:
			return api.CreateCustomer400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		case conflict:
			return api.CreateCustomer409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse(body)}, nil
		default:
			return api.CreateCustomer500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.CreateCustomer200JSONResponse(api.ToCustomer(*created)), nil
}

func (s Server) GetCustomer(ctx context.Context, request api.GetCustomerRequestObject) (api.GetCustomerResponseObject, error) {
	c, err := s.CustomerService.Get(ctx, request.UserName)
	if err != nil {
		switch o, body := classify(ctx, "getCustomer", err); o {
		case notFound:
			return api.GetCustomer404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		default:
			return api.GetCustomer500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.GetCustomer200JSONResponse(api.ToCustomer(*c)), nil
}

func (s Server) DeleteCustomer(ctx context.Context, request api.DeleteCustomerRequestObject) (api.DeleteCustomerResponseObject, error) {
	removed, err := s.CustomerService.Delete(ctx, request.UserName)
	if err != nil {
		switch o, body := classify(ctx, "deleteCustomer", err); o {
		case notFound:
			return api.DeleteCustomer404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		default:
			return api.DeleteCustomer500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.DeleteCustomer200JSONResponse(api.ToCustomer(*removed)), nil
}

func (s Server) CreateInvoice(ctx context.Context, request api.CreateInvoiceRequestObject) (api.CreateInvoiceResponseObject, error) {
	invoice, err := s.CustomerService.AddInvoice(ctx, request.UserName, api.FromInvoice(*request.Body))
	if err != nil {
		switch o, body := classify(ctx, "createInvoice", err); o {
		case validationError:
			return api.CreateInvoice400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		case notFound:
			return api.CreateInvoice404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		default:
			return api.CreateInvoice500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.CreateInvoice200JSONResponse(api.ToInvoice(*invoice)), nil
}

func (s Server) ListInvoices(ctx context.Context, request api.ListInvoicesRequestObject) (api.ListInvoicesResponseObject, error) {
	invoices, err := s.CustomerService.ListInvoices(ctx, request.UserName)
	if err != nil {
		switch o, body := classify(ctx, "listInvoices", err); o {
		case notFound:
			return api.ListInvoices404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		default:
			return api.ListInvoices500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.ListInvoices200JSONResponse(api.ToInvoices(invoices)), nil
}

func (s Server) ListPersons(ctx context.Context, request api.ListPersonsRequestObject) (api.ListPersonsResponseObject, error) {
	persons, err := s.PersonService.List(ctx)
	if err != nil {
		_, body := classify(ctx, "listPersons", err)
		return api.ListPersons500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
	}
	return api.ListPersons200JSONResponse(api.ToPersons(persons)), nil
}

func (s Server) CreatePerson(ctx context.Context, request api.CreatePersonRequestObject) (api.CreatePersonResponseObject, error) {
	created, err := s.PersonService.Create(ctx, api.FromPersonInput(*request.Body))
	if err != nil {
		switch o, body := classify(ctx, "createPerson", err); o {
		case validationError:
			return api.CreatePerson400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		default:
			return api.CreatePerson500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.CreatePerson200JSONResponse(api.ToPerson(*created)), nil
}

func (s Server) GetPerson(ctx context.Context, request api.GetPersonRequestObject) (api.GetPersonResponseObject, error) {
	p, err := s.PersonService.Get(ctx, request.Id)
	if err != nil {
		switch o, body := classify(ctx, "getPerson", err); o {
		case notFound:
			return api.GetPerson404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		default:
			return api.GetPerson500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.GetPerson200JSONResponse(api.ToPerson(*p)), nil
}

func (s Server) DeletePerson(ctx context.Context, request api.DeletePersonRequestObject) (api.DeletePersonResponseObject, error) {
	removed, err := s.PersonService.Delete(ctx, request.Id)
	if err != nil {
		switch o, body := classify(ctx, "deletePerson", err); o {
		case notFound:
			return api.DeletePerson404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		default:
			return api.DeletePerson500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.DeletePerson200JSONResponse(api.ToPerson(*removed)), nil
}

func (s Server) ListTeams(ctx context.Context, request api.ListTeamsRequestObject) (api.ListTeamsResponseObject, error) {
	teams, err := s.TeamService.List(ctx)
	if err != nil {
		_, body := classify(ctx, "listTeams", err)
		return api.ListTeams500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
	}
	return api.ListTeams200JSONResponse(api.ToTeams(teams)), nil
}

func (s Server) CreateTeam(ctx context.Context, request api.CreateTeamRequestObject) (api.CreateTeamResponseObject, error) {
	created, err := s.TeamService.Create(ctx, api.FromTeamInput(*request.Body))
	if err != nil {
		switch o, body := classify(ctx, "createTeam", err); o {
		case validationError:
			return api.CreateTeam400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		default:
			return api.CreateTeam500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.CreateTeam200JSONResponse(api.ToTeam(*created)), nil
}

func (s Server) GetTeam(ctx context.Context, request api.GetTeamRequestObject) (api.GetTeamResponseObject, error) {
	t, err := s.TeamService.Get(ctx, request.Id)
	if err != nil {
		switch o, body := classify(ctx, "getTeam", err); o {
		case notFound:
			return api.GetTeam404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		default:
			return api.GetTeam500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.GetTeam200JSONResponse(api.ToTeam(*t)), nil
}

func (s Server) DeleteTeam(ctx context.Context, request api.DeleteTeamRequestObject) (api.DeleteTeamResponseObject, error) {
	removed, err := s.TeamService.Delete(ctx, request.Id)
	if err != nil {
		switch o, body := classify(ctx, "deleteTeam", err); o {
		case notFound:
			return api.DeleteTeam404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		default:
			return api.DeleteTeam500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.DeleteTeam200JSONResponse(api.ToTeam(*removed)), nil
}

func (s Server) AssignPlayer(ctx context.Context, request api.AssignPlayerRequestObject) (api.AssignPlayerResponseObject, error) {
	player, err := s.TeamService.AddPlayer(ctx, request.Id, api.FromPlayer(*request.Body))
	if err != nil {
		switch o, body := classify(ctx, "assignPlayer", err); o {
		case validationError:
			return api.AssignPlayer400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		case notFound:
			return api.AssignPlayer404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		case conflict:
			return api.AssignPlayer409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse(body)}, nil
		default:
			return api.AssignPlayer500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.AssignPlayer200JSONResponse(api.ToPlayer(*player)), nil
}

func (s Server) ListPlayers(ctx context.Context, request api.ListPlayersRequestObject) (api.ListPlayersResponseObject, error) {
	players, err := s.TeamService.ListPlayers(ctx, request.Id)
	if err != nil {
		switch o, body := classify(ctx, "listPlayers", err); o {
		case notFound:
			return api.ListPlayers404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		default:
			return api.ListPlayers500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.ListPlayers200JSONResponse(api.ToPlayers(players)), nil
}

func (s Server) Signup(ctx context.Context, request api.SignupRequestObject) (api.SignupResponseObject, error) {
	created, err := s.UserService.SignUp(ctx, api.FromSignUpRequest(*request.Body))
	if err != nil {
		switch o, body := classify(ctx, "signup", err); o {
		case validationError:
			return api.Signup400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		case conflict:
			return api.Signup409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse(body)}, nil
		default:
			return api.Signup500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.Signup200JSONResponse(api.ToUser(*created)), nil
}

func (s Server) Login(ctx context.Context, request api.LoginRequestObject) (api.LoginResponseObject, error) {
	u, err := s.UserService.Login(ctx, request.Body.UserName, request.Body.Password)
	if err != nil {
		switch o, body := classify(ctx, "login", err); o {
		case validationError:
			return api.Login400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		case unauthorized:
			return api.Login401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
		default:
			return api.Login500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}

	token, expiresAt, err := s.Tokens.Issue(u.ID, u.UserName)
	if err != nil {
		_, body := classify(ctx, "login", err)
		return api.Login500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
	}
	return api.Login200JSONResponse{
		Message:   loggedInMessage,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s Server) GetSession(ctx context.Context, request api.GetSessionRequestObject) (api.GetSessionResponseObject, error) {
	claims, ok := validator.FromContext(ctx)
	if !ok {
		return api.GetSession401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse{Message: "missing session"}}, nil
	}

	u, err := s.UserService.GetUser(ctx, claims.UserID)
	if err != nil {
		switch o, body := classify(ctx, "getSession", err); o {
		case notFound:
			return api.GetSession404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		default:
			return api.GetSession500JSONResponse{ServerErrorJSONResponse: api.ServerErrorJSONResponse(body)}, nil
		}
	}
	return api.GetSession200JSONResponse(api.ToUser(*u)), nil
}
