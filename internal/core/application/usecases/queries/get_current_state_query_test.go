package queries_test

import (
	"testing"

	"citrustrack/internal/core/application/usecases/queries"
	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/principal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCurrentStateQuery_Valid(t *testing.T) {
	caller := mustPrincipal(kernel.NewUUID(), principal.RoleAdmin)

	query, err := queries.NewGetCurrentStateQuery(caller, kernel.NewUUID())

	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetCurrentStateQuery_InvalidArguments(t *testing.T) {
	caller := mustPrincipal(kernel.NewUUID(), principal.RoleExporter)

	_, err := queries.NewGetCurrentStateQuery(principal.Principal{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewGetCurrentStateQuery(caller, kernel.UUID{})
	require.Error(t, err)
}

func TestGetCurrentStateQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCurrentStateQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCurrentStateQueryIsNotConstructed)
}
