package livraison

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"service-livraison/internal/apperr"
	"service-livraison/internal/domain"
	"service-livraison/internal/logx"
	"service-livraison/internal/service/carbon"
)

// PendingOrder is one row of the driver-facing pending view.
type PendingOrder struct {
	Order            domain.Order
	Driver           *domain.Driver
	DeliveryID       int64
	DeliveryStatus   domain.DeliveryStatus
	RemainingSeconds int
	Cancellable      bool
}

type viewEntry struct {
	order      domain.Order
	driver     *domain.Driver
	deliveryID int64
	status     domain.DeliveryStatus
}

// Deps bundles the collaborators of the lifecycle service.
type Deps struct {
	Gateway       orderGateway
	Store         assignmentStore
	Geocoder      addressResolver
	Router        routeProvider
	Windows       windowScheduler
	WindowExpired counter
	Logger        logx.Logger
}

// Settings carries the tunables of the lifecycle service.
type Settings struct {
	OperationTimeout  time.Duration
	WindowTicks       int
	DefaultDistanceKm float64
	Vehicle           domain.VehicleClass
	Origin            domain.Coordinates
}

// Service drives the delivery lifecycle: claiming orders, recording
// outcomes, the undo window, and the pending view. Operations on the same
// order are serialized through a per-order lock; the view is guarded by its
// own RWMutex so reads never block lifecycle work on other orders.
type Service struct {
	gateway       orderGateway
	store         assignmentStore
	geo           addressResolver
	routes        routeProvider
	windows       windowScheduler
	carbon        carbon.Estimator
	windowExpired counter
	logger        logx.Logger

	operationTimeout  time.Duration
	windowTicks       int
	defaultDistanceKm float64
	vehicle           domain.VehicleClass
	origin            domain.Coordinates

	mu   sync.RWMutex
	view map[int64]*viewEntry

	locksMu sync.Mutex
	locks   map[int64]*sync.Mutex
}

// New - creates a new lifecycle Service.
func New(d Deps, st Settings) *Service {
	if st.OperationTimeout <= 0 {
		st.OperationTimeout = 3 * time.Second
	}
	if st.WindowTicks < 1 {
		st.WindowTicks = 10
	}
	if st.DefaultDistanceKm <= 0 {
		st.DefaultDistanceKm = 10
	}
	if !st.Vehicle.Valid() {
		st.Vehicle = domain.VehicleCar
	}
	return &Service{
		gateway:           d.Gateway,
		store:             d.Store,
		geo:               d.Geocoder,
		routes:            d.Router,
		windows:           d.Windows,
		carbon:            carbon.NewEstimator(),
		windowExpired:     d.WindowExpired,
		logger:            d.Logger,
		operationTimeout:  st.OperationTimeout,
		windowTicks:       st.WindowTicks,
		defaultDistanceKm: st.DefaultDistanceKm,
		vehicle:           st.Vehicle,
		origin:            st.Origin,
		view:              make(map[int64]*viewEntry),
		locks:             make(map[int64]*sync.Mutex),
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) orderLock(orderID int64) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	m, ok := s.locks[orderID]
	if !ok {
		m = &sync.Mutex{}
		s.locks[orderID] = m
	}
	return m
}

// Refresh rebuilds the pending view from the order backend merged with the
// stored assignments. Entries whose undo window is still open survive the
// rebuild even when the backend no longer lists the order.
func (s *Service) Refresh(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	orders, err := s.gateway.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("refresh pending view: %w", err)
	}
	assignments, err := s.store.All(ctx)
	if err != nil {
		return fmt.Errorf("refresh pending view: %w", err)
	}

	byOrder := make(map[int64]domain.Assignment, len(assignments))
	for _, a := range assignments {
		byOrder[a.OrderID] = a
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[int64]*viewEntry, len(orders))
	for _, o := range orders {
		if o.Status != domain.OrderPending && o.Status != domain.OrderEnCours {
			continue
		}
		e := &viewEntry{order: o}
		if prev, ok := s.view[o.ID]; ok {
			e.driver = prev.driver
			e.deliveryID = prev.deliveryID
			e.status = prev.status
		}
		if a, ok := byOrder[o.ID]; ok {
			drv := a.Driver
			e.driver = &drv
			e.deliveryID = a.DeliveryID
			if e.status == "" {
				e.status = domain.DeliveryEnCours
			}
		}
		next[o.ID] = e
	}
	for id, e := range s.view {
		if _, ok := next[id]; !ok && s.windows.Active(id) {
			next[id] = e
		}
	}
	s.view = next

	return nil
}

// Claim assigns an order to a driver and creates the backing delivery
// record. The first driver to claim wins; everyone else gets
// apperr.ErrAlreadyClaimed.
func (s *Service) Claim(ctx context.Context, orderID int64, driver domain.Driver) (int64, error) {
	if orderID <= 0 {
		return 0, apperr.ErrInvalid
	}
	if err := driver.Validate(); err != nil {
		return 0, err
	}

	lock := s.orderLock(orderID)
	lock.Lock()
	defer lock.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	existing, err := s.store.Get(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("claim order %d: %w", orderID, err)
	}
	if existing != nil {
		return 0, apperr.ErrAlreadyClaimed
	}

	deliveryID, err := s.gateway.CreateDelivery(ctx, orderID, driver, domain.TypeADomicile)
	if err != nil {
		return 0, fmt.Errorf("claim order %d: %w", orderID, err)
	}

	// Losing the order↔delivery mapping orphans the record, so a store
	// failure fails the whole claim.
	if err := s.store.Put(ctx, domain.Assignment{OrderID: orderID, Driver: driver}); err != nil {
		return 0, fmt.Errorf("claim order %d: %w: %v", orderID, apperr.ErrPersistence, err)
	}
	if err := s.store.PutDeliveryID(ctx, orderID, deliveryID); err != nil {
		return 0, fmt.Errorf("claim order %d: %w: %v", orderID, apperr.ErrPersistence, err)
	}

	s.enrichDestination(ctx, orderID, deliveryID)

	s.mu.Lock()
	e, ok := s.view[orderID]
	if !ok {
		e = &viewEntry{order: domain.Order{ID: orderID}}
		s.view[orderID] = e
	}
	drv := driver
	e.driver = &drv
	e.deliveryID = deliveryID
	e.status = domain.DeliveryEnCours
	s.mu.Unlock()

	s.logger.Info("order claimed",
		logx.String("event", "order_claimed"),
		logx.Int64("order_id", orderID),
		logx.Int64("delivery_id", deliveryID),
		logx.Int64("driver_id", driver.ID),
	)

	return deliveryID, nil
}

// enrichDestination geocodes the delivery address and records it on the
// delivery record. Best effort: a failure here never fails the claim.
func (s *Service) enrichDestination(ctx context.Context, orderID, deliveryID int64) {
	s.mu.RLock()
	var address string
	if e, ok := s.view[orderID]; ok {
		address = e.order.Address
	}
	s.mu.RUnlock()

	if address == "" {
		return
	}

	dest := s.geo.Resolve(ctx, address)
	if err := s.gateway.UpdateDelivery(ctx, deliveryID, domain.DeliveryPatch{Destination: &dest}); err != nil {
		s.logger.Warn("destination enrichment skipped",
			logx.Int64("order_id", orderID),
			logx.Err(err),
		)
	}
}

// SubmitOutcome records the terminal result of a delivery attempt and opens
// the undo window. For delivered orders the carbon footprint is computed
// from the routed distance, falling back to the backend estimate and then a
// local one flagged unreliable.
func (s *Service) SubmitOutcome(ctx context.Context, orderID int64, outcome domain.Outcome) (*carbon.Estimate, error) {
	if orderID <= 0 {
		return nil, apperr.ErrInvalid
	}
	if err := outcome.Validate(); err != nil {
		return nil, err
	}

	lock := s.orderLock(orderID)
	lock.Lock()
	defer lock.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := s.store.Get(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("outcome for order %d: %w", orderID, err)
	}
	if a == nil {
		return nil, apperr.ErrNotClaimed
	}

	rec, err := s.gateway.GetDelivery(ctx, a.DeliveryID)
	if err != nil {
		return nil, fmt.Errorf("outcome for order %d: %w", orderID, err)
	}
	if rec != nil && rec.Status.Terminal() {
		return nil, apperr.ErrInvalidTransition
	}

	patch := domain.DeliveryPatch{Status: &outcome.Status}
	if outcome.Photo != "" {
		photo := outcome.Photo
		patch.Photo = &photo
	}
	if outcome.Reason != "" {
		reason := outcome.Reason
		patch.Reason = &reason
	}

	var est *carbon.Estimate
	if outcome.Status == domain.DeliveryLivre {
		est = s.footprint(ctx, orderID, a.DeliveryID, &patch)
	}

	if err := s.gateway.UpdateDelivery(ctx, a.DeliveryID, patch); err != nil {
		return nil, fmt.Errorf("outcome for order %d: %w", orderID, err)
	}

	s.mu.Lock()
	if e, ok := s.view[orderID]; ok {
		e.status = outcome.Status
	}
	s.mu.Unlock()

	s.windows.Start(orderID, s.windowTicks, s.finalize)

	s.logger.Info("outcome submitted",
		logx.String("event", "outcome_submitted"),
		logx.Int64("order_id", orderID),
		logx.Int64("delivery_id", a.DeliveryID),
		logx.String("status", string(outcome.Status)),
	)

	return est, nil
}

// footprint computes the carbon estimate for a delivered order and records
// origin, destination and footprint on the patch. Returns nil when no
// defensible figure exists (no route between the points).
func (s *Service) footprint(ctx context.Context, orderID, deliveryID int64, patch *domain.DeliveryPatch) *carbon.Estimate {
	s.mu.RLock()
	var address string
	if e, ok := s.view[orderID]; ok {
		address = e.order.Address
	}
	s.mu.RUnlock()

	origin := s.origin
	dest := origin
	if address != "" {
		dest = s.geo.Resolve(ctx, address)
	}
	patch.Origin = &origin
	patch.Destination = &dest

	distanceKm := s.defaultDistanceKm
	routed := false

	route, err := s.routes.Route(ctx, origin, dest)
	switch {
	case err == nil:
		distanceKm = route.DistanceKm()
		routed = true
	case errors.Is(err, apperr.ErrNoRoute):
		s.logger.Warn("no route between points, footprint skipped",
			logx.Int64("order_id", orderID),
		)
		return nil
	default:
		s.logger.Warn("routing failed, using default distance",
			logx.Int64("order_id", orderID),
			logx.Float64("default_km", distanceKm),
			logx.Err(err),
		)
	}

	est, err := s.carbon.Estimate(distanceKm, s.vehicle)
	if err != nil {
		s.logger.Warn("carbon estimation failed",
			logx.Int64("order_id", orderID),
			logx.Err(err),
		)
		return nil
	}

	if !routed {
		// The backend may hold better trip data than our default distance.
		if kg, cerr := s.gateway.ComputeCarbon(ctx, s.vehicle, distanceKm, deliveryID); cerr == nil {
			est.CarbonKg = kg
		} else {
			est.Unreliable = true
		}
	}

	patch.CarbonKg = &est.CarbonKg
	return &est
}

// CancelOutcome reopens a delivery whose outcome was just submitted. Only
// possible while the undo window is open; cancellation races the window
// expiry and exactly one of them wins.
func (s *Service) CancelOutcome(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return apperr.ErrInvalid
	}

	lock := s.orderLock(orderID)
	lock.Lock()
	defer lock.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := s.store.Get(ctx, orderID)
	if err != nil {
		return fmt.Errorf("cancel outcome for order %d: %w", orderID, err)
	}
	if a == nil {
		return apperr.ErrNotClaimed
	}

	remaining := s.windows.Remaining(orderID)
	if !s.windows.Cancel(orderID) {
		return apperr.ErrInvalidTransition
	}

	status := domain.DeliveryEnCours
	empty := ""
	patch := domain.DeliveryPatch{Status: &status, Photo: &empty, Reason: &empty}
	if err := s.gateway.UpdateDelivery(ctx, a.DeliveryID, patch); err != nil {
		// Revert failed upstream: reopen the window so the order does not
		// stay visible forever with a stale terminal status.
		s.windows.Start(orderID, remaining, s.finalize)
		return fmt.Errorf("cancel outcome for order %d: %w", orderID, err)
	}

	s.mu.Lock()
	if e, ok := s.view[orderID]; ok {
		e.status = domain.DeliveryEnCours
	}
	s.mu.Unlock()

	s.logger.Info("outcome cancelled",
		logx.String("event", "outcome_cancelled"),
		logx.Int64("order_id", orderID),
		logx.Int64("delivery_id", a.DeliveryID),
	)

	return nil
}

// finalize hides an order once its undo window expires. Runs on the
// scheduler goroutine.
func (s *Service) finalize(orderID int64) {
	s.mu.Lock()
	delete(s.view, orderID)
	s.mu.Unlock()

	if s.windowExpired != nil {
		s.windowExpired.Inc()
	}

	s.logger.Info("pending window expired",
		logx.String("event", "pending_window_expired"),
		logx.Int64("order_id", orderID),
	)
}

// Release drops an order from the view and deletes its assignment. Used when
// the order backend cancels or deletes an order. Idempotent.
func (s *Service) Release(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return apperr.ErrInvalid
	}

	lock := s.orderLock(orderID)
	lock.Lock()
	defer lock.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	s.windows.Cancel(orderID)

	if err := s.store.Delete(ctx, orderID); err != nil {
		return fmt.Errorf("release order %d: %w", orderID, err)
	}

	s.mu.Lock()
	delete(s.view, orderID)
	s.mu.Unlock()

	s.logger.Info("order released",
		logx.String("event", "order_released"),
		logx.Int64("order_id", orderID),
	)

	return nil
}

// PendingOrders returns a snapshot of the pending view sorted by order id.
func (s *Service) PendingOrders() []PendingOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]PendingOrder, 0, len(s.view))
	for id, e := range s.view {
		po := PendingOrder{
			Order:          e.order,
			DeliveryID:     e.deliveryID,
			DeliveryStatus: e.status,
		}
		if e.driver != nil {
			drv := *e.driver
			po.Driver = &drv
		}
		if s.windows.Active(id) {
			po.RemainingSeconds = s.windows.Remaining(id)
			po.Cancellable = true
		}
		out = append(out, po)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Order.ID < out[j].Order.ID })
	return out
}

// Close stops every open undo window without finalizing. Called on shutdown.
func (s *Service) Close() {
	s.windows.StopAll()
}
