package http_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	inhttp "opsboard/internal/adapters/in/http"
	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/shipment"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubShipmentRepository struct {
	shipments map[kernel.UUID]*shipment.Shipment
}

func newStubShipmentRepository() *stubShipmentRepository {
	return &stubShipmentRepository{shipments: make(map[kernel.UUID]*shipment.Shipment)}
}

func (r *stubShipmentRepository) Add(_ context.Context, aggregate *shipment.Shipment) error {
	r.shipments[aggregate.ID()] = aggregate
	return nil
}

func (r *stubShipmentRepository) Update(_ context.Context, aggregate *shipment.Shipment) error {
	if _, ok := r.shipments[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("shipment", aggregate.ID().String())
	}
	r.shipments[aggregate.ID()] = aggregate
	return nil
}

func (r *stubShipmentRepository) Get(_ context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	s, ok := r.shipments[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipment", id.String())
	}
	return s, nil
}

func (r *stubShipmentRepository) GetByTrackingNumber(
	_ context.Context,
	trackingNumber kernel.TrackingNumber,
) (*shipment.Shipment, error) {
	for _, s := range r.shipments {
		if s.TrackingNumber() == trackingNumber {
			return s, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber.String())
}

type stubShipmentUoW struct {
	repo *stubShipmentRepository
}

func (u *stubShipmentUoW) Begin(context.Context) error    { return nil }
func (u *stubShipmentUoW) Commit(context.Context) error   { return nil }
func (u *stubShipmentUoW) Rollback(context.Context) error { return nil }
func (u *stubShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	return u.repo
}

type stubShipmentUoWFactory struct {
	uow *stubShipmentUoW
}

func (f stubShipmentUoWFactory) Create() commands.ShipmentUoW { return f.uow }

// brokenEmitUoW refuses to begin, which exercises the best-effort emission
// path without a notification store behind it.
type brokenEmitUoW struct{}

func (brokenEmitUoW) Begin(context.Context) error    { return errors.New("emit store is down") }
func (brokenEmitUoW) Commit(context.Context) error   { return nil }
func (brokenEmitUoW) Rollback(context.Context) error { return nil }
func (brokenEmitUoW) NotificationRepository() ports.NotificationRepository {
	return nil
}
func (brokenEmitUoW) ActivityRepository() ports.ActivityRepository { return nil }

type brokenEmitUoWFactory struct{}

func (brokenEmitUoWFactory) Create() commands.EmitUoW { return brokenEmitUoW{} }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStatusTestServer(t *testing.T, repo *stubShipmentRepository) *echo.Echo {
	t.Helper()

	handler := commands.NewUpdateShipmentStatusCommandHandler(
		stubShipmentUoWFactory{uow: &stubShipmentUoW{repo: repo}},
		brokenEmitUoWFactory{},
		testLogger(),
	)

	server := inhttp.NewServer(inhttp.Handlers{UpdateShipmentStatus: handler}, nil, testLogger())
	e := echo.New()
	server.RegisterRoutes(e, nil)
	return e
}

func seedShipment(t *testing.T, repo *stubShipmentRepository, status shipment.Status) *shipment.Shipment {
	t.Helper()

	s, err := shipment.RestoreShipment(
		kernel.NewUUID(),
		kernel.NewTrackingNumber(),
		shipment.ServiceStandard,
		"12 Dock Rd", "88 Venue Ave",
		nil, nil, nil,
		status,
		"",
	)
	require.NoError(t, err)
	require.NoError(t, repo.Add(t.Context(), s))
	return s
}

func postStatus(e *echo.Echo, shipmentID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipments/"+shipmentID+"/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_UpdateShipmentStatus_Success(t *testing.T) {
	repo := newStubShipmentRepository()
	e := newStatusTestServer(t, repo)
	s := seedShipment(t, repo, shipment.Processing)

	rec := postStatus(e, s.ID().String(), `{"status":"picked_up","note":"driver signed manifest"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)

	stored, err := repo.Get(t.Context(), s.ID())
	require.NoError(t, err)
	assert.Equal(t, shipment.PickedUp, stored.Status())
}

func TestServer_UpdateShipmentStatus_IllegalTransition(t *testing.T) {
	repo := newStubShipmentRepository()
	e := newStatusTestServer(t, repo)
	s := seedShipment(t, repo, shipment.Processing)

	rec := postStatus(e, s.ID().String(), `{"status":"delivered","note":"skipping ahead"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)

	stored, err := repo.Get(t.Context(), s.ID())
	require.NoError(t, err)
	assert.Equal(t, shipment.Processing, stored.Status())
}

func TestServer_UpdateShipmentStatus_MissingNote(t *testing.T) {
	repo := newStubShipmentRepository()
	e := newStatusTestServer(t, repo)
	s := seedShipment(t, repo, shipment.Processing)

	rec := postStatus(e, s.ID().String(), `{"status":"picked_up","note":"   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "note")
}

func TestServer_UpdateShipmentStatus_ShipmentNotFound(t *testing.T) {
	repo := newStubShipmentRepository()
	e := newStatusTestServer(t, repo)

	rec := postStatus(e, kernel.NewUUID().String(), `{"status":"delayed","note":"truck broke down"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_UpdateShipmentStatus_UnknownStatus(t *testing.T) {
	repo := newStubShipmentRepository()
	e := newStatusTestServer(t, repo)
	s := seedShipment(t, repo, shipment.Processing)

	rec := postStatus(e, s.ID().String(), `{"status":"teleported","note":"n/a"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_UpdateShipmentStatus_InvalidShipmentID(t *testing.T) {
	repo := newStubShipmentRepository()
	e := newStatusTestServer(t, repo)

	rec := postStatus(e, "not-a-uuid", `{"status":"delayed","note":"truck broke down"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Health(t *testing.T) {
	repo := newStubShipmentRepository()
	e := newStatusTestServer(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}
