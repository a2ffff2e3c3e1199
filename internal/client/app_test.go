package client

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-service/internal/adapter"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/mock"
	"github.com/MKhiriev/go-user-service/models"
)

const testID = "0190a6f8-4c1e-7b8a-9d3f-2a1b3c4d5e6f"

func ptr[T any](v T) *T { return &v }

func newTestApp(t *testing.T) (*App, *mock.MockUsersAPI, *bytes.Buffer) {
	t.Helper()
	api := mock.NewMockUsersAPI(gomock.NewController(t))
	out := &bytes.Buffer{}
	return NewApp(api, out, logger.Nop()), api, out
}

func TestApp_Run_Create(t *testing.T) {
	app, api, out := newTestApp(t)

	in := models.User{Name: "Ann", Age: 30, Email: "ann@example.com"}
	created := in
	created.ID = testID
	api.EXPECT().CreateUser(gomock.Any(), in).Return(created, nil)

	err := app.Run(context.Background(), []string{"create", "-name", "Ann", "-age", "30", "-email", "ann@example.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+testID+`","name":"Ann","age":30,"email":"ann@example.com"}`, out.String())
}

func TestApp_Run_CreateBadFlag(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"create", "-age", "old"})
	assert.ErrorIs(t, err, ErrInvalidArgs)
}

func TestApp_Run_ListEmpty(t *testing.T) {
	app, api, out := newTestApp(t)

	api.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

	require.NoError(t, app.Run(context.Background(), []string{"list"}))
	assert.JSONEq(t, `[]`, out.String())
}

func TestApp_Run_Get(t *testing.T) {
	app, api, out := newTestApp(t)

	user := models.User{ID: testID, Name: "Bob", Age: 40, Email: "bob@example.com"}
	api.EXPECT().GetUser(gomock.Any(), testID).Return(user, nil)

	require.NoError(t, app.Run(context.Background(), []string{"get", testID}))
	assert.JSONEq(t, `{"id":"`+testID+`","name":"Bob","age":40,"email":"bob@example.com"}`, out.String())
}

func TestApp_Run_GetNotFound(t *testing.T) {
	app, api, out := newTestApp(t)

	api.EXPECT().GetUser(gomock.Any(), testID).Return(models.User{}, adapter.ErrNotFound)

	err := app.Run(context.Background(), []string{"get", testID})
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Empty(t, out.String())
}

func TestApp_Run_UpdateSendsOnlyGivenFlags(t *testing.T) {
	app, api, _ := newTestApp(t)

	want := models.UserPatch{Age: ptr(21)}
	api.EXPECT().
		UpdateUser(gomock.Any(), testID, want).
		Return(models.User{ID: testID, Name: "Ann", Age: 21, Email: "ann@example.com"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"update", testID, "-age", "21"}))
}

func TestApp_Run_UpdateEmptyName(t *testing.T) {
	app, api, _ := newTestApp(t)

	want := models.UserPatch{Name: ptr("")}
	api.EXPECT().UpdateUser(gomock.Any(), testID, want).Return(models.User{}, adapter.ErrBadRequest)

	err := app.Run(context.Background(), []string{"update", testID, "-name", ""})
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}

func TestApp_Run_Delete(t *testing.T) {
	app, api, out := newTestApp(t)

	api.EXPECT().DeleteUser(gomock.Any(), testID).Return("User deleted successfully", nil)

	require.NoError(t, app.Run(context.Background(), []string{"delete", testID}))
	assert.JSONEq(t, `{"message":"User deleted successfully"}`, out.String())
}

func TestApp_Run_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "no command", args: nil, want: ErrMissingCommand},
		{name: "unknown command", args: []string{"rename"}, want: ErrUnknownCommand},
		{name: "get without id", args: []string{"get"}, want: ErrMissingUserID},
		{name: "update without id", args: []string{"update"}, want: ErrMissingUserID},
		{name: "delete without id", args: []string{"delete"}, want: ErrMissingUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t)
			assert.ErrorIs(t, app.Run(context.Background(), tt.args), tt.want)
		})
	}
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf)
	assert.Contains(t, buf.String(), "update ID")
}
