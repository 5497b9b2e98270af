package commands_test

import (
	"testing"
	"time"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/principal"
	"citrustrack/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func exporterPrincipal(t *testing.T) principal.Principal {
	t.Helper()

	caller, err := principal.NewPrincipal(kernel.NewUUID(), principal.RoleExporter)
	require.NoError(t, err)

	return caller
}

func validDetails() shipment.Details {
	return shipment.Details{
		ExporterName:       "Cape Citrus Co",
		ImporterName:       "Hamburg Fruit GmbH",
		Product:            "Lemons",
		Variety:            "Eureka",
		QuantityCartons:    500,
		DestinationCountry: "Germany",
		DestinationPort:    "Hamburg",
	}
}

func storedShipment(t *testing.T, ownerID kernel.UUID) *shipment.Shipment {
	t.Helper()

	sh, err := shipment.NewShipment(
		kernel.NewUUID(),
		ownerID,
		shipment.NewTrackingNumber(),
		validDetails(),
		time.Now().UTC(),
	)
	require.NoError(t, err)

	return sh
}
