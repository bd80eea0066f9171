package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

type memSellerRepo struct {
	sellers []*entity.Seller
}

func (r *memSellerRepo) Create(_ context.Context, seller *entity.Seller) error {
	if seller.ID == "" {
		seller.ID = fmt.Sprintf("seller-%d", len(r.sellers)+1)
	}
	r.sellers = append(r.sellers, seller)
	return nil
}

func (r *memSellerRepo) GetByID(_ context.Context, id string) (*entity.Seller, error) {
	for _, s := range r.sellers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, errors.NotFound("Seller", nil)
}

func (r *memSellerRepo) GetByUserID(_ context.Context, userID string) (*entity.Seller, error) {
	for _, s := range r.sellers {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, errors.NotFound("Seller", nil)
}

func (r *memSellerRepo) ListAll(context.Context) ([]*entity.Seller, error) {
	return append([]*entity.Seller(nil), r.sellers...), nil
}

func (r *memSellerRepo) Update(_ context.Context, seller *entity.Seller) error {
	for i, s := range r.sellers {
		if s.ID == seller.ID {
			r.sellers[i] = seller
			return nil
		}
	}
	return errors.NotFound("Seller", nil)
}

func (r *memSellerRepo) Delete(_ context.Context, id string) error {
	for i, s := range r.sellers {
		if s.ID == id {
			r.sellers = append(r.sellers[:i], r.sellers[i+1:]...)
			return nil
		}
	}
	return nil
}

type memProductRepo struct {
	products map[string]*entity.Product
	order    []string
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		_ = r.Create(context.Background(), p)
	}
	return r
}

func (r *memProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = fmt.Sprintf("product-%d", len(r.order)+1)
	}
	r.products[product.ID] = product
	r.order = append(r.order, product.ID)
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) ListAll(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) ListBySellerID(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	all, _ := r.ListAll(ctx)
	var out []*entity.Product
	for _, p := range all {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) UpdateRating(_ context.Context, id string, rating float64, reviewCount int) error {
	p, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	p.Rating = rating
	p.ReviewCount = reviewCount
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

// memRequestRepo applies transitions under a lock and only commits when fn
// succeeds, like a store transaction.
type memRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*entity.ProductRequest
	products *memProductRepo
	seq      int
}

func newMemRequestRepo(products *memProductRepo) *memRequestRepo {
	return &memRequestRepo{requests: map[string]*entity.ProductRequest{}, products: products}
}

func (r *memRequestRepo) Create(_ context.Context, request *entity.ProductRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	if request.ID == "" {
		request.ID = fmt.Sprintf("request-%d", r.seq)
	}
	request.CreatedAt = time.Unix(int64(r.seq), 0)
	request.UpdatedAt = request.CreatedAt
	r.requests[request.ID] = request
	return nil
}

func (r *memRequestRepo) GetByID(_ context.Context, id string) (*entity.ProductRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, errors.NotFound("Request", nil)
	}
	cp := *req
	return &cp, nil
}

func (r *memRequestRepo) list(match func(*entity.ProductRequest) bool, status entity.RequestStatus) []*entity.ProductRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.ProductRequest
	for _, req := range r.requests {
		if match(req) && (status == "" || req.Status == status) {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *memRequestRepo) ListBySellerID(_ context.Context, sellerID string, status entity.RequestStatus) ([]*entity.ProductRequest, error) {
	return r.list(func(req *entity.ProductRequest) bool { return req.SellerID == sellerID }, status), nil
}

func (r *memRequestRepo) ListByBuyerID(_ context.Context, buyerID string, status entity.RequestStatus) ([]*entity.ProductRequest, error) {
	return r.list(func(req *entity.ProductRequest) bool { return req.BuyerID == buyerID }, status), nil
}

func (r *memRequestRepo) HasApproved(_ context.Context, buyerID, productID string) (bool, error) {
	approved := r.list(func(req *entity.ProductRequest) bool {
		return req.BuyerID == buyerID && req.ProductID == productID
	}, entity.RequestApproved)
	return len(approved) > 0, nil
}

func (r *memRequestRepo) Transition(_ context.Context, id string, fn repository.TransitionFunc) (*entity.ProductRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.requests[id]
	if !ok {
		return nil, errors.NotFound("Request", nil)
	}
	request := *stored

	var product *entity.Product
	if p, ok := r.products.products[request.ProductID]; ok {
		cp := *p
		product = &cp
	}

	if err := fn(&request, product); err != nil {
		return nil, err
	}

	r.requests[id] = &request
	if product != nil {
		r.products.products[product.ID] = product
	}
	return &request, nil
}

func (r *memRequestRepo) WatchByBuyerID(ctx context.Context, buyerID string, fn func([]*entity.ProductRequest)) error {
	<-ctx.Done()
	return nil
}

type memReviewRepo struct {
	reviews []*entity.ProductReview
}

func (r *memReviewRepo) Create(_ context.Context, review *entity.ProductReview) error {
	if review.ID == "" {
		review.ID = fmt.Sprintf("review-%d", len(r.reviews)+1)
	}
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *memReviewRepo) ListByProductID(_ context.Context, productID string) ([]*entity.ProductReview, error) {
	var out []*entity.ProductReview
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *memReviewRepo) ListByBuyerID(_ context.Context, buyerID string) ([]*entity.ProductReview, error) {
	var out []*entity.ProductReview
	for _, rv := range r.reviews {
		if rv.BuyerID == buyerID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *memReviewRepo) Exists(_ context.Context, buyerID, productID string) (bool, error) {
	for _, rv := range r.reviews {
		if rv.BuyerID == buyerID && rv.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

type memFavoriteRepo struct {
	favorites map[string]*entity.Favorite
}

func newMemFavoriteRepo() *memFavoriteRepo {
	return &memFavoriteRepo{favorites: map[string]*entity.Favorite{}}
}

func (r *memFavoriteRepo) Exists(_ context.Context, buyerID, productID string) (bool, error) {
	_, ok := r.favorites[entity.FavoriteID(buyerID, productID)]
	return ok, nil
}

func (r *memFavoriteRepo) Add(_ context.Context, favorite *entity.Favorite) error {
	favorite.ID = entity.FavoriteID(favorite.BuyerID, favorite.ProductID)
	r.favorites[favorite.ID] = favorite
	return nil
}

func (r *memFavoriteRepo) Remove(_ context.Context, buyerID, productID string) error {
	delete(r.favorites, entity.FavoriteID(buyerID, productID))
	return nil
}

func (r *memFavoriteRepo) CountByProductID(_ context.Context, productID string) (int, error) {
	n := 0
	for _, f := range r.favorites {
		if f.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r *memFavoriteRepo) ListByBuyerID(_ context.Context, buyerID string) ([]*entity.Favorite, error) {
	var out []*entity.Favorite
	for _, f := range r.favorites {
		if f.BuyerID == buyerID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

type memFeedbackRepo struct {
	items []*entity.Feedback
}

func (r *memFeedbackRepo) Create(_ context.Context, feedback *entity.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = fmt.Sprintf("feedback-%d", len(r.items)+1)
	}
	r.items = append(r.items, feedback)
	return nil
}

func (r *memFeedbackRepo) GetByID(_ context.Context, kind entity.FeedbackKind, id string) (*entity.Feedback, error) {
	for _, f := range r.items {
		if f.Kind == kind && f.ID == id {
			return f, nil
		}
	}
	return nil, errors.NotFound("Feedback", nil)
}

func (r *memFeedbackRepo) List(_ context.Context, kind entity.FeedbackKind, status entity.FeedbackStatus, limit, offset int) ([]*entity.Feedback, int64, error) {
	var matched []*entity.Feedback
	for _, f := range r.items {
		if f.Kind == kind && (status == "" || f.Status == status) {
			matched = append(matched, f)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return []*entity.Feedback{}, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (r *memFeedbackRepo) UpdateStatus(ctx context.Context, kind entity.FeedbackKind, id string, status entity.FeedbackStatus) error {
	f, err := r.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}
	f.Status = status
	return nil
}

type recordingPublisher struct {
	events []entity.RequestStatusChanged
	err    error
}

func (p *recordingPublisher) PublishRequestStatus(_ context.Context, event entity.RequestStatusChanged) error {
	p.events = append(p.events, event)
	return p.err
}

type memNotificationStore struct {
	unseen map[string][]string
}

func newMemNotificationStore() *memNotificationStore {
	return &memNotificationStore{unseen: map[string][]string{}}
}

func (s *memNotificationStore) AddUnseen(_ context.Context, userID, requestID string) error {
	s.unseen[userID] = append(s.unseen[userID], requestID)
	return nil
}

func (s *memNotificationStore) ListUnseen(_ context.Context, userID string) ([]string, error) {
	return s.unseen[userID], nil
}

func (s *memNotificationStore) ClearUnseen(_ context.Context, userID string) error {
	delete(s.unseen, userID)
	return nil
}

type recordingPusher struct {
	pushed   []interface{}
	messages map[string][]interface{}
}

func (p *recordingPusher) Push(message interface{}) {
	p.pushed = append(p.pushed, message)
}

func (p *recordingPusher) SendToUser(userID string, message interface{}) {
	if p.messages == nil {
		p.messages = map[string][]interface{}{}
	}
	p.messages[userID] = append(p.messages[userID], message)
}

func intPtr(v int) *int { return &v }
