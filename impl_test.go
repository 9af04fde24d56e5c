package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallApi/api"
	"hallApi/envvars"
	"hallApi/services/session"
	"hallApi/utils"
)

func newTestClient(t *testing.T) *resty.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend, closeBackend, err := openBackend(context.Background(), envvars.Env{StoreBackend: envvars.MemoryBackend})
	require.NoError(t, err)
	t.Cleanup(closeBackend)

	r, err := NewRouter(newServer(backend, session.NewTokens([]byte("impl-test-secret"), time.Hour)))
	require.NoError(t, err)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return resty.New().SetBaseURL(ts.URL)
}

func TestComposerLifecycle(t *testing.T) {
	client := newTestClient(t)

	var created api.Composer
	resp, err := client.R().
		SetBody(api.ComposerInput{ComposerId: utils.ToPointer(int64(1)), FirstName: "Johann", LastName: "Bach"}).
		SetResult(&created).
		Post("/api/composers")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, int64(1), created.ComposerId)
	assert.Equal(t, "Johann", created.FirstName)
	assert.Equal(t, "Bach", created.LastName)
	assert.NotEmpty(t, created.DateCreated)

	var got api.Composer
	resp, err = client.R().SetResult(&got).Get("/api/composers/" + created.Id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, created, got)

	var all []api.Composer
	resp, err = client.R().SetResult(&all).Get("/api/composers")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Len(t, all, 1)

	var updated api.Composer
	resp, err = client.R().
		SetBody(api.ComposerUpdate{FirstName: utils.ToPointer("J. S.")}).
		SetResult(&updated).
		Put("/api/composers/" + created.Id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "J. S.", updated.FirstName)
	assert.Equal(t, "Bach", updated.LastName)

	resp, err = client.R().Delete("/api/composers/" + created.Id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	var apiErr api.Error
	resp, err = client.R().SetError(&apiErr).Get("/api/composers/" + created.Id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.NotEmpty(t, apiErr.Message)
}

func TestEmptyListsAreArrays(t *testing.T) {
	client := newTestClient(t)

	for _, path := range []string{"/api/composers", "/api/customers", "/api/persons", "/api/teams"} {
		resp, err := client.R().Get(path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode(), path)
		assert.JSONEq(t, "[]", resp.String(), path)
	}
}

func TestUnknownIDsAreNotFound(t *testing.T) {
	client := newTestClient(t)

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/composers/missing"},
		{http.MethodDelete, "/api/composers/missing"},
		{http.MethodGet, "/api/customers/missing"},
		{http.MethodDelete, "/api/customers/missing"},
		{http.MethodGet, "/api/customers/missing/invoices"},
		{http.MethodGet, "/api/persons/missing"},
		{http.MethodDelete, "/api/persons/missing"},
		{http.MethodGet, "/api/teams/missing"},
		{http.MethodDelete, "/api/teams/missing"},
		{http.MethodGet, "/api/teams/missing/players"},
	}
	for _, tt := range requests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, err := client.R().Execute(tt.method, tt.path)
			require.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode())
			assert.Contains(t, resp.String(), `"message"`)
		})
	}
}

func TestCreateValidation(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.R().SetBody(map[string]any{"firstName": "Only"}).Post("/api/composers")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())

	resp, err = client.R().SetBody(api.PersonInput{FirstName: " ", LastName: "Hopper"}).Post("/api/persons")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Contains(t, resp.String(), `"message"`)
}

func TestCustomersAndInvoices(t *testing.T) {
	client := newTestClient(t)

	input := api.CustomerInput{
		FirstName: utils.ToPointer("Ada"),
		LastName:  utils.ToPointer("Lovelace"),
		UserName:  "ada",
	}
	var created api.Customer
	resp, err := client.R().SetBody(input).SetResult(&created).Post("/api/customers")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Equal(t, "ada", created.UserName)
	assert.NotNil(t, created.Invoices)

	resp, err = client.R().SetBody(input).Post("/api/customers")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode())

	invoice := api.Invoice{
		Subtotal: utils.ToPointer(10.5),
		Tax:      utils.ToPointer(0.5),
		LineItems: &[]api.LineItem{
			{Name: utils.ToPointer("pen"), Price: utils.ToPointer(10.5), Quantity: utils.ToPointer(1)},
		},
	}
	resp, err = client.R().SetBody(invoice).Post("/api/customers/nobody/invoices")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	var stored api.Invoice
	resp, err = client.R().SetBody(invoice).SetResult(&stored).Post("/api/customers/ada/invoices")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Equal(t, 10.5, utils.FromPointer(stored.Subtotal))
	assert.NotEmpty(t, utils.FromPointer(stored.DateCreated))

	var invoices []api.Invoice
	resp, err = client.R().SetResult(&invoices).Get("/api/customers/ada/invoices")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Len(t, invoices, 1)

	var customers []api.Customer
	resp, err = client.R().SetResult(&customers).Get("/api/customers")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, customers, 1)
	assert.Len(t, customers[0].Invoices, 1)

	resp, err = client.R().Delete("/api/customers/ada")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestPersonLifecycle(t *testing.T) {
	client := newTestClient(t)

	var created api.Person
	resp, err := client.R().
		SetBody(api.PersonInput{
			FirstName: "Grace",
			LastName:  "Hopper",
			Roles:     &[]api.Role{{Text: utils.ToPointer("admiral")}},
		}).
		SetResult(&created).
		Post("/api/persons")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	require.Len(t, created.Roles, 1)
	assert.Equal(t, "admiral", utils.FromPointer(created.Roles[0].Text))
	assert.NotNil(t, created.Dependents)

	var got api.Person
	resp, err = client.R().SetResult(&got).Get("/api/persons/" + created.Id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, created, got)

	resp, err = client.R().Delete("/api/persons/" + created.Id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = client.R().Get("/api/persons/" + created.Id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestTeamsAndPlayers(t *testing.T) {
	client := newTestClient(t)

	var created api.Team
	resp, err := client.R().
		SetBody(api.TeamInput{Name: "Owls", Mascot: utils.ToPointer("owl")}).
		SetResult(&created).
		Post("/api/teams")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Equal(t, "Owls", created.Name)
	assert.NotNil(t, created.Players)

	player := api.Player{PlayerId: "p1", FirstName: "Sam", LastName: "Lee", AnnualSalary: utils.ToPointer(1000.0)}
	var assigned api.Player
	resp, err = client.R().SetBody(player).SetResult(&assigned).Post("/api/teams/" + created.Id + "/players")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Equal(t, "p1", assigned.PlayerId)

	resp, err = client.R().SetBody(player).Post("/api/teams/" + created.Id + "/players")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode())

	resp, err = client.R().SetBody(player).Post("/api/teams/missing/players")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	var players []api.Player
	resp, err = client.R().SetResult(&players).Get("/api/teams/" + created.Id + "/players")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Len(t, players, 1)
}

func TestSignupLoginSession(t *testing.T) {
	client := newTestClient(t)

	signUp := api.SignUpRequest{
		UserName:       "keith",
		Password:       "s3cret!",
		EmailAddresses: &[]string{"keith@example.com"},
	}
	var created api.User
	resp, err := client.R().SetBody(signUp).SetResult(&created).Post("/api/signup")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Equal(t, "keith", created.UserName)
	assert.Equal(t, []string{"keith@example.com"}, created.EmailAddresses)
	assert.NotContains(t, resp.String(), "password")
	assert.NotContains(t, resp.String(), "s3cret!")

	resp, err = client.R().SetBody(signUp).Post("/api/signup")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode())

	var login api.LoginResponse
	resp, err = client.R().
		SetBody(api.LoginRequest{UserName: "keith", Password: "s3cret!"}).
		SetResult(&login).
		Post("/api/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Equal(t, "User logged in", login.Message)
	assert.NotEmpty(t, login.Token)
	assert.True(t, login.ExpiresAt.After(time.Now()))
	assert.NotContains(t, resp.String(), "password")

	for _, creds := range []api.LoginRequest{
		{UserName: "keith", Password: "wrong"},
		{UserName: "nobody", Password: "s3cret!"},
	} {
		resp, err = client.R().SetBody(creds).Post("/api/login")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	}

	var me api.User
	resp, err = client.R().SetAuthToken(login.Token).SetResult(&me).Get("/api/session")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Equal(t, created.Id, me.Id)
	assert.NotContains(t, resp.String(), "password")

	resp, err = client.R().SetAuthToken("garbage").Get("/api/session")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	resp, err = client.R().Get("/api/session")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
}

func TestDocsAndHealth(t *testing.T) {
	client := newTestClient(t)

	for _, path := range []string{"/healthz", "/api-docs", "/api-docs/openapi.yaml", "/api-docs/openapi.json"} {
		resp, err := client.R().Get(path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode(), path)
	}

	resp, err := client.R().Get("/api-docs/openapi.json")
	require.NoError(t, err)
	assert.Contains(t, resp.String(), `"/api/signup"`)
}
