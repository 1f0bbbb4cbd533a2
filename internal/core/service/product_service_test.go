package service

import (
	"context"
	"errors"
	"testing"

	"github.com/storekit/storefront-api/internal/core/domain"
	"github.com/storekit/storefront-api/internal/core/ports"
)

type stubProductRepo struct {
	products   map[int64]domain.Product
	nextID     int64
	lastFilter ports.ListProductsFilter
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: map[int64]domain.Product{}, nextID: 1}
}

func (r *stubProductRepo) List(ctx context.Context, filter ports.ListProductsFilter) ([]domain.Product, int64, error) {
	r.lastFilter = filter
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Find(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (r *stubProductRepo) Create(ctx context.Context, p *domain.Product) (int64, error) {
	id := r.nextID
	r.nextID++
	p.ID = id
	r.products[id] = *p
	return id, nil
}

func (r *stubProductRepo) Update(ctx context.Context, p *domain.Product) (bool, error) {
	if _, ok := r.products[p.ID]; !ok {
		return false, nil
	}
	r.products[p.ID] = *p
	return true, nil
}

func (r *stubProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestProductService_CreateAndGet(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	id, err := svc.Create(context.Background(), ports.CreateProductInput{
		Title:       "  Fountain Pen  ",
		Description: strPtr("fine nib"),
		Price:       19.90,
		Category:    strPtr("stationery"),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}

	got, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Title != "Fountain Pen" {
		t.Fatalf("expected trimmed title, got %q", got.Title)
	}
	if got.Price != 19.90 {
		t.Fatalf("expected price 19.90, got %v", got.Price)
	}
}

func TestProductService_CreateRejectsBlankTitle(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Create(context.Background(), ports.CreateProductInput{Title: title, Price: 1}); !errors.Is(err, domain.ErrTitleRequired) {
			t.Fatalf("title %q: expected ErrTitleRequired, got %v", title, err)
		}
	}
	if len(repo.products) != 0 {
		t.Fatalf("rejected create must not persist, repo holds %d rows", len(repo.products))
	}
}

func TestProductService_CreateRejectsNegativePrice(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Title: "Pen", Price: -0.01}); !errors.Is(err, domain.ErrNegativePrice) {
		t.Fatalf("expected ErrNegativePrice, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Title: "Pen", Price: 0}); err != nil {
		t.Fatalf("zero price should be allowed, got %v", err)
	}
}

func TestProductService_UpdateMergesFields(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	id, err := svc.Create(context.Background(), ports.CreateProductInput{
		Title:       "Pen",
		Description: strPtr("blue ink"),
		Price:       5,
		Category:    strPtr("stationery"),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	changed, err := svc.Update(context.Background(), id, ports.UpdateProductInput{Price: f64Ptr(7.5)})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !changed {
		t.Fatal("expected update to report a change")
	}

	got, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Price != 7.5 {
		t.Fatalf("expected price 7.5, got %v", got.Price)
	}
	if got.Title != "Pen" || got.Description == nil || *got.Description != "blue ink" {
		t.Fatalf("untouched fields must survive the update, got %+v", got)
	}
}

func TestProductService_UpdateRejectsBlankTitle(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	id, _ := svc.Create(context.Background(), ports.CreateProductInput{Title: "Pen", Price: 5})

	if _, err := svc.Update(context.Background(), id, ports.UpdateProductInput{Title: strPtr("  ")}); !errors.Is(err, domain.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}

	got, _ := svc.Get(context.Background(), id)
	if got.Title != "Pen" {
		t.Fatalf("rejected update must not persist, title is %q", got.Title)
	}
}

func TestProductService_UpdateUnknownID(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)

	if _, err := svc.Update(context.Background(), 99, ports.UpdateProductInput{Price: f64Ptr(1)}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_DeleteThenGet(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	id, _ := svc.Create(context.Background(), ports.CreateProductInput{Title: "Pen", Price: 5})

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), id); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), id); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on second delete, got %v", err)
	}
}

func TestProductService_ListPassesFilterThrough(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	filter := ports.ListProductsFilter{Search: "pen", Category: "stationery", Sort: "price", Dir: "asc", Page: 2, Limit: 25}
	if _, _, err := svc.List(context.Background(), filter); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastFilter != filter {
		t.Fatalf("filter was altered in transit: %+v", repo.lastFilter)
	}
}
