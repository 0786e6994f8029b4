package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"prom_map/internal/models"
	"prom_map/internal/services"
	"prom_map/internal/testhelpers"
)

type StoreSuite struct {
	suite.Suite
	ctx       context.Context
	db        *gorm.DB
	locations *services.LocationService
	routes    *services.RouteService
	payments  *services.PaymentService
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testhelpers.NewDB(s.T())
	s.locations = services.NewLocationService(s.db)
	s.routes = services.NewRouteService(s.db)
	s.payments = services.NewPaymentService(s.db)
}

func (s *StoreSuite) TestLocationLifecycle() {
	loc := &models.Location{Title: testhelpers.Ptr("Point A"), Price: testhelpers.Ptr(true)}
	s.Require().NoError(s.locations.Create(s.ctx, loc))
	s.NotZero(loc.ID)
	s.False(loc.CreatedAt.IsZero())

	got, err := s.locations.Get(s.ctx, loc.ID)
	s.Require().NoError(err)
	s.Equal("Point A", *got.Title)
	s.True(*got.Price)
	s.Nil(got.Zoom)

	got.Likes = testhelpers.Ptr(10)
	s.Require().NoError(s.locations.Update(s.ctx, got, []string{"likes"}))

	again, err := s.locations.Get(s.ctx, loc.ID)
	s.Require().NoError(err)
	s.Equal(10, *again.Likes)
	s.Equal("Point A", *again.Title)

	s.Require().NoError(s.locations.Delete(s.ctx, loc.ID))
	_, err = s.locations.Get(s.ctx, loc.ID)
	s.ErrorIs(err, services.ErrNotFound)
	s.ErrorIs(s.locations.Delete(s.ctx, loc.ID), services.ErrNotFound)
}

func (s *StoreSuite) TestLocationDeleteIsHard() {
	loc := &models.Location{Title: testhelpers.Ptr("Gone")}
	s.Require().NoError(s.locations.Create(s.ctx, loc))
	s.Require().NoError(s.locations.Delete(s.ctx, loc.ID))

	var count int64
	s.Require().NoError(s.db.Table("locations").Count(&count).Error)
	s.Zero(count)
}

func (s *StoreSuite) TestUpdateDoesNotResurrectDeletedRow() {
	loc := &models.Location{Title: testhelpers.Ptr("Doomed")}
	s.Require().NoError(s.locations.Create(s.ctx, loc))

	stale, err := s.locations.Get(s.ctx, loc.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.locations.Delete(s.ctx, loc.ID))

	stale.Likes = testhelpers.Ptr(1)
	s.ErrorIs(s.locations.Update(s.ctx, stale, []string{"likes"}), services.ErrNotFound)
	s.ErrorIs(s.locations.Update(s.ctx, stale, []string{}), services.ErrNotFound)

	var count int64
	s.Require().NoError(s.db.Table("locations").Count(&count).Error)
	s.Zero(count)
}

func (s *StoreSuite) TestOverlappingPartialUpdatesKeepBothFields() {
	loc := &models.Location{Title: testhelpers.Ptr("old"), Likes: testhelpers.Ptr(0)}
	s.Require().NoError(s.locations.Create(s.ctx, loc))

	first, err := s.locations.Get(s.ctx, loc.ID)
	s.Require().NoError(err)
	second, err := s.locations.Get(s.ctx, loc.ID)
	s.Require().NoError(err)

	s.Require().NoError(first.Apply(models.Payload{"title": []byte(`"new"`)}))
	s.Require().NoError(second.Apply(models.Payload{"likes": []byte(`5`)}))
	s.Require().NoError(s.locations.Update(s.ctx, first, []string{"title"}))
	s.Require().NoError(s.locations.Update(s.ctx, second, []string{"likes"}))

	s.Equal("new", *second.Title, "update reloads the row")
	got, err := s.locations.Get(s.ctx, loc.ID)
	s.Require().NoError(err)
	s.Equal("new", *got.Title)
	s.Equal(5, *got.Likes)
}

func (s *StoreSuite) TestUpdateClearsSelectedNulls() {
	route := &models.Route{Name: testhelpers.Ptr("r"), Color: testhelpers.Ptr("#fff"), Steps: []byte(`[]`)}
	s.Require().NoError(s.routes.Create(s.ctx, route))

	s.Require().NoError(route.Apply(models.Payload{"color": []byte(`null`), "steps": []byte(`null`)}))
	s.Require().NoError(s.routes.Update(s.ctx, route, []string{"color", "steps"}))

	got, err := s.routes.Get(s.ctx, route.ID)
	s.Require().NoError(err)
	s.Nil(got.Color)
	s.Equal("r", *got.Name)
	steps, err := got.Steps.MarshalJSON()
	s.Require().NoError(err)
	s.Equal(`null`, string(steps))
}

func (s *StoreSuite) TestListReturnsEveryRowOnce() {
	empty, err := s.locations.List(s.ctx)
	s.Require().NoError(err)
	s.NotNil(empty)
	s.Empty(empty)

	var ids []uint
	for _, title := range []string{"a", "b", "c"} {
		loc := &models.Location{Title: testhelpers.Ptr(title)}
		s.Require().NoError(s.locations.Create(s.ctx, loc))
		ids = append(ids, loc.ID)
	}
	s.Require().NoError(s.locations.Delete(s.ctx, ids[1]))

	list, err := s.locations.List(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 2)
	got := map[uint]bool{}
	for _, l := range list {
		s.False(got[l.ID], "duplicate id %d", l.ID)
		got[l.ID] = true
	}
	s.True(got[ids[0]])
	s.True(got[ids[2]])
}

func (s *StoreSuite) TestRouteJSONRoundTrip() {
	route := &models.Route{
		Name:        testhelpers.Ptr("Old town"),
		Coordinates: []byte(`[[85.0,56.5],[85.1,56.6]]`),
		Steps:       []byte(`[]`),
	}
	s.Require().NoError(s.routes.Create(s.ctx, route))

	got, err := s.routes.Get(s.ctx, route.ID)
	s.Require().NoError(err)
	s.JSONEq(`[[85.0,56.5],[85.1,56.6]]`, string(got.Coordinates))
	s.JSONEq(`[]`, string(got.Steps))
	poi, err := got.PointsOfInterest.MarshalJSON()
	s.Require().NoError(err)
	s.Equal(`null`, string(poi))

	list, err := s.routes.List(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 1)

	s.Require().NoError(s.routes.Delete(s.ctx, route.ID))
	_, err = s.routes.Get(s.ctx, route.ID)
	s.ErrorIs(err, services.ErrNotFound)
}

func (s *StoreSuite) TestPaymentMirrorReads() {
	succeeded := models.PaymentSucceeded
	s.Require().NoError(s.db.Create(&models.YookassaPayment{
		PaymentID: "pay_1", OrderID: "order_1", Amount: 500, Currency: "RUB", Status: &succeeded, IsPaid: true,
	}).Error)
	s.Require().NoError(s.db.Create(&models.YookassaPayment{
		PaymentID: "pay_2", OrderID: "order_2", Amount: 100, Currency: "RUB",
	}).Error)

	list, err := s.payments.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("pay_2", list[0].PaymentID)

	got, err := s.payments.GetByPaymentID(s.ctx, "pay_1")
	s.Require().NoError(err)
	s.Equal(models.PaymentSucceeded, *got.Status)
	s.Equal(models.NotRefunded, got.StatusRefund)
	s.True(got.IsPaid)

	pending, err := s.payments.GetByPaymentID(s.ctx, "pay_2")
	s.Require().NoError(err)
	s.Nil(pending.Status)
	s.Zero(pending.RefundAmount)

	_, err = s.payments.GetByPaymentID(s.ctx, "missing")
	s.ErrorIs(err, services.ErrNotFound)
}

func (s *StoreSuite) TestPaymentIDIsUnique() {
	p := models.YookassaPayment{PaymentID: "dup", OrderID: "o", Amount: 1, Currency: "RUB"}
	s.Require().NoError(s.db.Create(&p).Error)
	p2 := models.YookassaPayment{PaymentID: "dup", OrderID: "o2", Amount: 1, Currency: "RUB"}
	s.Error(s.db.Create(&p2).Error)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}
