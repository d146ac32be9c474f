package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"brandm-backend/models"
	"brandm-backend/payment"
	"brandm-backend/store"
)

// In-memory store implementations backing the service tests.

type fakeUserStore struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserStore) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	u := *user
	u.ID = id
	f.users[id] = &u
	return id, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) All(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) Update(_ context.Context, id primitive.ObjectID, upd models.UpdateUserRequest) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	if upd.Age != nil {
		u.Age = *upd.Age
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeProductStore struct {
	products map[primitive.ObjectID]*models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[primitive.ObjectID]*models.Product)}
}

func (f *fakeProductStore) add(p models.Product) primitive.ObjectID {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.products[p.ID] = &p
	return p.ID
}

func (f *fakeProductStore) Insert(_ context.Context, product *models.Product) (primitive.ObjectID, error) {
	return f.add(*product), nil
}

func (f *fakeProductStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	if p, ok := f.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeProductStore) FindBySKU(_ context.Context, sku string) (*models.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			copied := *p
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeProductStore) Search(_ context.Context, _ models.ProductQuery) ([]models.Product, error) {
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductStore) FindSimilar(_ context.Context, product *models.Product, limit int64) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.ID == product.ID {
			continue
		}
		if p.Gender == product.Gender && p.Category == product.Category {
			out = append(out, *p)
		}
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeProductStore) Update(_ context.Context, id primitive.ObjectID, _ models.UpdateProductRequest) (*models.Product, error) {
	if p, ok := f.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeProductStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

type fakeCartStore struct {
	carts map[primitive.ObjectID]*models.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[primitive.ObjectID]*models.Cart)}
}

func (f *fakeCartStore) FindByOwner(_ context.Context, owner primitive.ObjectID) (*models.Cart, error) {
	if c, ok := f.carts[owner]; ok {
		copied := *c
		copied.Items = append([]models.CartItem(nil), c.Items...)
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeCartStore) Insert(_ context.Context, cart *models.Cart) error {
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	copied := *cart
	f.carts[cart.Owner] = &copied
	return nil
}

func (f *fakeCartStore) Save(_ context.Context, cart *models.Cart) error {
	copied := *cart
	copied.Items = append([]models.CartItem(nil), cart.Items...)
	f.carts[cart.Owner] = &copied
	return nil
}

func (f *fakeCartStore) DeleteByOwner(_ context.Context, owner primitive.ObjectID) error {
	if _, ok := f.carts[owner]; !ok {
		return store.ErrNotFound
	}
	delete(f.carts, owner)
	return nil
}

type fakeCheckoutStore struct {
	checkouts map[primitive.ObjectID]*models.Checkout
}

func newFakeCheckoutStore() *fakeCheckoutStore {
	return &fakeCheckoutStore{checkouts: make(map[primitive.ObjectID]*models.Checkout)}
}

func (f *fakeCheckoutStore) Insert(_ context.Context, checkout *models.Checkout) error {
	if checkout.ID.IsZero() {
		checkout.ID = primitive.NewObjectID()
	}
	copied := *checkout
	f.checkouts[checkout.ID] = &copied
	return nil
}

func (f *fakeCheckoutStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Checkout, error) {
	if c, ok := f.checkouts[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeCheckoutStore) FindBySessionID(_ context.Context, sessionID string) (*models.Checkout, error) {
	for _, c := range f.checkouts {
		if c.StripeSessionID == sessionID {
			copied := *c
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeCheckoutStore) Save(_ context.Context, checkout *models.Checkout) error {
	stored, ok := f.checkouts[checkout.ID]
	if !ok {
		return store.ErrNotFound
	}
	stored.IsPaid = checkout.IsPaid
	stored.PaidAt = checkout.PaidAt
	stored.PaymentStatus = checkout.PaymentStatus
	stored.PaymentDetails = checkout.PaymentDetails
	stored.UpdatedAt = checkout.UpdatedAt
	return nil
}

func (f *fakeCheckoutStore) MarkFinalized(_ context.Context, id primitive.ObjectID, at time.Time) (bool, error) {
	stored, ok := f.checkouts[id]
	if !ok || stored.IsFinalized {
		return false, nil
	}
	stored.IsFinalized = true
	stored.FinalizedAt = &at
	stored.UpdatedAt = at
	return true, nil
}

type fakeOrderStore struct {
	orders map[primitive.ObjectID]*models.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[primitive.ObjectID]*models.Order)}
}

func (f *fakeOrderStore) Insert(_ context.Context, order *models.Order) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *order
	copied.ID = id
	f.orders[id] = &copied
	return id, nil
}

func (f *fakeOrderStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	if o, ok := f.orders[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeOrderStore) FindByOwner(_ context.Context, owner primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.User.ID == owner {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) FindBySessionID(_ context.Context, owner primitive.ObjectID, sessionID string) (*models.Order, error) {
	for _, o := range f.orders {
		if o.User.ID == owner && o.PaymentDetails != nil && o.PaymentDetails.StripeSessionID == sessionID {
			copied := *o
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeOrderStore) All(_ context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderStore) Save(_ context.Context, order *models.Order) error {
	if _, ok := f.orders[order.ID]; !ok {
		return store.ErrNotFound
	}
	copied := *order
	f.orders[order.ID] = &copied
	return nil
}

func (f *fakeOrderStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.orders[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

// fakeGateway records created sessions and serves canned lookups.
type fakeGateway struct {
	sessions   map[string]*payment.Session
	nextID     int
	createErr  error
	lastParams payment.SessionParams
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{sessions: make(map[string]*payment.Session)}
}

func (g *fakeGateway) CreateSession(_ context.Context, params payment.SessionParams) (*payment.Session, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.lastParams = params
	g.nextID++
	var total int64
	for _, item := range params.LineItems {
		total += item.UnitAmount * item.Quantity
	}
	session := &payment.Session{
		ID:            fmt.Sprintf("cs_test_%d", g.nextID),
		URL:           fmt.Sprintf("https://pay.example.com/%d", g.nextID),
		PaymentStatus: "unpaid",
		AmountTotal:   total,
		Currency:      "usd",
	}
	g.sessions[session.ID] = session
	return session, nil
}

func (g *fakeGateway) GetSession(_ context.Context, id string) (*payment.Session, error) {
	session, ok := g.sessions[id]
	if !ok {
		return nil, payment.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (g *fakeGateway) markPaid(id string) {
	session := g.sessions[id]
	session.PaymentStatus = payment.PaymentStatusPaid
	session.PaymentIntentID = "pi_" + id
}

// fakeMailer records sent confirmations.
type fakeMailer struct {
	sent chan string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan string, 8)}
}

func (m *fakeMailer) SendOrderConfirmation(toEmail string, _ *models.Order) error {
	m.sent <- toEmail
	return nil
}
