package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
)

// Login exchanges credentials for a signed access token.
func (s *Server) Login(c echo.Context) error {
	var request loginRequest
	if err := c.Bind(&request); err != nil {
		return writeBindError(c)
	}

	cmd, err := commands.NewLoginUserCommand(request.Email, request.Password)
	if err != nil {
		return writeError(c, err)
	}

	accessToken, err := s.handlers.LoginUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{AccessToken: accessToken})
}

// CreateUser registers an operator account.
func (s *Server) CreateUser(c echo.Context) error {
	var request userRequest
	if err := c.Bind(&request); err != nil {
		return writeBindError(c)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(
		userID,
		request.Name,
		request.Email,
		request.Password,
	)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.CreateUser.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: userID.String()})
}

// UpdateUser replaces the user's profile; an empty password keeps the
// current one.
func (s *Server) UpdateUser(c echo.Context) error {
	userID, err := parseUUIDParam(c, "userID")
	if err != nil {
		return writeError(c, err)
	}

	var request userRequest
	if err := c.Bind(&request); err != nil {
		return writeBindError(c)
	}

	cmd, err := commands.NewUpdateUserCommand(
		userID,
		request.Name,
		request.Email,
		request.Password,
	)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.UpdateUser.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteUser soft-deletes a user account.
func (s *Server) DeleteUser(c echo.Context) error {
	userID, err := parseUUIDParam(c, "userID")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.DeleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetUser returns one user account, without credentials.
func (s *Server) GetUser(c echo.Context) error {
	userID, err := parseUUIDParam(c, "userID")
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetUserByIDQuery(userID)
	if err != nil {
		return writeError(c, err)
	}

	response, err := s.handlers.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, userPayload(response))
}

// ListUsers returns a page of active user accounts.
func (s *Server) ListUsers(c echo.Context) error {
	pagination, err := parsePagination(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewListUsersQuery(c.QueryParam("sortBy"), pagination)
	if err != nil {
		return writeError(c, err)
	}

	response, err := s.handlers.ListUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	payload := listPayload[userDetail]{
		Data:        make([]userDetail, 0, len(response.Users)),
		Total:       response.Total,
		Pages:       response.Pages,
		CurrentPage: response.CurrentPage,
	}
	for _, summary := range response.Users {
		payload.Data = append(payload.Data, userPayload(summary))
	}

	return c.JSON(http.StatusOK, payload)
}

type userDetail struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func userPayload(response queries.GetUserByIDQueryResponse) userDetail {
	return userDetail{
		ID:    response.ID.String(),
		Name:  response.Name,
		Email: response.Email,
	}
}
