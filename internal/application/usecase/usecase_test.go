package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/application/usecase"
	"github.com/jhoicas/ticket-logger-api/internal/domain"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/infrastructure/memory"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeStorage registra las llamadas a Save/Delete.
type fakeStorage struct {
	mu       sync.Mutex
	saved    []string
	deleted  []string
	saveErr  error
	deleteFn func(ref string) error
}

func (f *fakeStorage) Save(_ context.Context, filename, _ string, _ int64, content io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", f.saveErr
	}
	_, _ = io.Copy(io.Discard, content)
	ref := "stored-" + filename
	f.saved = append(f.saved, ref)
	return ref, nil
}

func (f *fakeStorage) Delete(_ context.Context, ref string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, ref)
	if f.deleteFn != nil {
		return f.deleteFn(ref)
	}
	return nil
}

func (f *fakeStorage) URL(ref string) string { return "/images/" + ref }

type fixture struct {
	store     *memory.Store
	regions   *usecase.RegionUseCase
	provinces *usecase.ProvinceUseCase
	markets   *usecase.SupermarketUseCase
	locations *usecase.LocationUseCase
	cats      *usecase.CategoryUseCase
	products  *usecase.ProductUseCase
	tickets   *usecase.TicketUseCase
	storage   *fakeStorage
}

func newFixture() *fixture {
	s := memory.NewStore()
	log := logger.Nop()
	st := &fakeStorage{}
	return &fixture{
		store:     s,
		regions:   usecase.NewRegionUseCase(memory.NewRegionRepository(s), log),
		provinces: usecase.NewProvinceUseCase(memory.NewProvinceRepository(s), memory.NewRegionRepository(s), log),
		markets:   usecase.NewSupermarketUseCase(memory.NewSupermarketRepository(s), log),
		locations: usecase.NewLocationUseCase(memory.NewLocationRepository(s), memory.NewSupermarketRepository(s), memory.NewProvinceRepository(s), log),
		cats:      usecase.NewCategoryUseCase(memory.NewCategoryRepository(s), st, log),
		products:  usecase.NewProductUseCase(memory.NewProductRepository(s), log),
		tickets: usecase.NewTicketUseCase(memory.NewTicketRepository(s), memory.NewLocationRepository(s),
			memory.NewProductRepository(s), memory.NewTxRunner(s), log),
		storage: st,
	}
}

func image(name string) *dto.ImageUpload {
	body := []byte("png")
	return &dto.ImageUpload{Filename: name, ContentType: "image/png", Size: int64(len(body)), Content: bytes.NewReader(body)}
}

func assertKey(t *testing.T, err error, kind error, key string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, kind), "se esperaba %v, llegó %v", kind, err)
	k, _, ok := domain.MessageKey(err)
	require.True(t, ok)
	assert.Equal(t, key, k)
}

// ──────────────────────────────────────────────────────────────────────────────
// Región / Provincia
// ──────────────────────────────────────────────────────────────────────────────

func TestRegion_CodigoDuplicado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.regions.Create(ctx, dto.CreateRegionRequest{Code: "01", Name: "Andalucía"})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = f.regions.Create(ctx, dto.CreateRegionRequest{Code: "01", Name: "Otra"})
	assertKey(t, err, domain.ErrDuplicate, domain.MsgRegionCodeExists)

	got, err := f.regions.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "01", got.Code)
}

func TestRegion_UpdateConservaSuPropioCodigo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a, _ := f.regions.Create(ctx, dto.CreateRegionRequest{Code: "01", Name: "Andalucía"})
	_, _ = f.regions.Create(ctx, dto.CreateRegionRequest{Code: "02", Name: "Aragón"})

	out, err := f.regions.Update(ctx, a.ID, dto.CreateRegionRequest{Code: "01", Name: "Andalucía Sur"})
	require.NoError(t, err)
	assert.Equal(t, "Andalucía Sur", out.Name)

	_, err = f.regions.Update(ctx, a.ID, dto.CreateRegionRequest{Code: "02", Name: "X"})
	assertKey(t, err, domain.ErrDuplicate, domain.MsgRegionCodeExists)
}

func TestRegion_ValidacionYNoEncontrada(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.regions.Create(ctx, dto.CreateRegionRequest{Code: "123", Name: "Demasiado largo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.regions.GetByID(ctx, 999)
	assertKey(t, err, domain.ErrNotFound, domain.MsgRegionNotFound)

	err = f.regions.Delete(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegion_ListPaginado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for _, code := range []string{"01", "02", "03"} {
		_, err := f.regions.Create(ctx, dto.CreateRegionRequest{Code: code, Name: "R" + code})
		require.NoError(t, err)
	}

	out, err := f.regions.List(ctx, dto.PageRequest{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "02", out.Items[0].Code)
	assert.Equal(t, 2, out.Page.Limit)

	out, err = f.regions.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 20, out.Page.Limit)
	assert.Len(t, out.Items, 3)
}

func TestProvince_RegionInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.provinces.Create(context.Background(), dto.CreateProvinceRequest{Code: "41", Name: "Sevilla", RegionID: 42})
	assertKey(t, err, domain.ErrNotFound, domain.MsgProvinceRegionNotFound)
}

func TestProvince_CreaConRegionYBloqueaBorradoDeRegion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	r, _ := f.regions.Create(ctx, dto.CreateRegionRequest{Code: "01", Name: "Andalucía"})

	p, err := f.provinces.Create(ctx, dto.CreateProvinceRequest{Code: "41", Name: "Sevilla", RegionID: r.ID})
	require.NoError(t, err)
	require.NotNil(t, p.Region)
	assert.Equal(t, "Andalucía", p.Region.Name)

	err = f.regions.Delete(ctx, r.ID)
	assertKey(t, err, domain.ErrInUse, domain.MsgInUse)

	require.NoError(t, f.provinces.Delete(ctx, p.ID))
	require.NoError(t, f.regions.Delete(ctx, r.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ubicación
// ──────────────────────────────────────────────────────────────────────────────

func seedLocation(t *testing.T, f *fixture, address string) *dto.LocationResponse {
	t.Helper()
	ctx := context.Background()
	r, err := f.regions.Create(ctx, dto.CreateRegionRequest{Code: "01", Name: "Andalucía"})
	require.NoError(t, err)
	p, err := f.provinces.Create(ctx, dto.CreateProvinceRequest{Code: "41", Name: "Sevilla", RegionID: r.ID})
	require.NoError(t, err)
	sm, err := f.markets.Create(ctx, dto.CreateSupermarketRequest{Name: "Mercadona"})
	require.NoError(t, err)
	loc, err := f.locations.Create(ctx, dto.CreateLocationRequest{Address: address, City: "Sevilla", SupermarketID: sm.ID, ProvinceID: p.ID})
	require.NoError(t, err)
	return loc
}

func TestLocation_DireccionUnicaYReferencias(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	loc := seedLocation(t, f, "Calle Feria 1")
	assert.Equal(t, "Mercadona", loc.Supermarket.Name)
	assert.Equal(t, "Andalucía", loc.Province.Region.Name)

	_, err := f.locations.Create(ctx, dto.CreateLocationRequest{
		Address: "Calle Feria 1", City: "Sevilla", SupermarketID: loc.Supermarket.ID, ProvinceID: loc.Province.ID,
	})
	assertKey(t, err, domain.ErrDuplicate, domain.MsgLocationAddressExists)

	_, err = f.locations.Create(ctx, dto.CreateLocationRequest{
		Address: "Otra 2", City: "Sevilla", SupermarketID: 999, ProvinceID: loc.Province.ID,
	})
	assertKey(t, err, domain.ErrNotFound, domain.MsgLocationSupermarketNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categoría
// ──────────────────────────────────────────────────────────────────────────────

func TestCategory_PadreResumido(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	parent, err := f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Electrónica"}, nil)
	require.NoError(t, err)
	assert.Nil(t, parent.ParentCategory)

	child, err := f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Teléfonos", ParentCategoryID: &parent.ID}, nil)
	require.NoError(t, err)
	require.NotNil(t, child.ParentCategory)
	assert.Equal(t, "Electrónica", child.ParentCategory.Name)

	list, err := f.cats.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
}

func TestCategory_PadreInexistenteYNombreDuplicado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	missing := int64(77)

	_, err := f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Teléfonos", ParentCategoryID: &missing}, nil)
	assertKey(t, err, domain.ErrNotFound, domain.MsgCategoryParentNotFound)

	_, err = f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Electrónica"}, nil)
	require.NoError(t, err)
	_, err = f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Electrónica"}, nil)
	assertKey(t, err, domain.ErrDuplicate, domain.MsgCategoryNameExists)

	_, err = f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "E"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategory_DeleteBorraLaImagenUnaVez(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	c, err := f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Electrónica"}, image("a.png"))
	require.NoError(t, err)
	assert.Equal(t, "/images/stored-a.png", c.Image)

	require.NoError(t, f.cats.Delete(ctx, c.ID))
	assert.Equal(t, []string{"stored-a.png"}, f.storage.deleted)

	_, err = f.cats.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategory_DeleteSinImagenNoTocaElAlmacenamiento(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c, _ := f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Electrónica"}, nil)

	require.NoError(t, f.cats.Delete(ctx, c.ID))
	assert.Empty(t, f.storage.deleted)
}

func TestCategory_DeleteFallaSiElBorradoDeImagenFalla(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c, _ := f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Electrónica"}, image("a.png"))
	f.storage.deleteFn = func(string) error { return errors.New("disco lleno") }

	err := f.cats.Delete(ctx, c.ID)
	assertKey(t, err, domain.ErrStorage, domain.MsgCategoryImageDelete)

	_, err = f.cats.GetByID(ctx, c.ID)
	assert.NoError(t, err, "la fila sigue existiendo")
}

func TestCategory_UpdateReemplazaImagen(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c, _ := f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Electrónica"}, image("a.png"))

	out, err := f.cats.Update(ctx, c.ID, dto.CreateCategoryRequest{Name: "Electrónica"}, image("b.png"))
	require.NoError(t, err)
	assert.Equal(t, "/images/stored-b.png", out.Image)
	assert.Equal(t, []string{"stored-a.png"}, f.storage.deleted)

	out, err = f.cats.Update(ctx, c.ID, dto.CreateCategoryRequest{Name: "Electro"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/images/stored-b.png", out.Image, "sin imagen nueva se conserva la actual")
}

func TestCategory_UpdateRechazaCiclos(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a, _ := f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Hogar"}, nil)
	b, _ := f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Electrónica", ParentCategoryID: &a.ID}, nil)
	c, _ := f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Teléfonos", ParentCategoryID: &b.ID}, nil)

	_, err := f.cats.Update(ctx, a.ID, dto.CreateCategoryRequest{Name: "Hogar", ParentCategoryID: &c.ID}, nil)
	assertKey(t, err, domain.ErrInvalidInput, domain.MsgCategoryParentCycle)

	_, err = f.cats.Update(ctx, a.ID, dto.CreateCategoryRequest{Name: "Hogar", ParentCategoryID: &a.ID}, nil)
	assertKey(t, err, domain.ErrInvalidInput, domain.MsgCategoryParentCycle)
}

func TestCategory_NoSeBorraConHijas(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a, _ := f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Hogar"}, image("h.png"))
	_, _ = f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Cocina", ParentCategoryID: &a.ID}, nil)

	err := f.cats.Delete(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrInUse)
	assert.Empty(t, f.storage.deleted, "la imagen no se toca si el borrado se rechaza")
}

func TestCategory_ErrorAlGuardarImagen(t *testing.T) {
	f := newFixture()
	f.storage.saveErr = errors.New("s3 caído")

	_, err := f.cats.Create(context.Background(), dto.CreateCategoryRequest{Name: "Electrónica"}, image("a.png"))
	assertKey(t, err, domain.ErrStorage, domain.MsgCategoryImageSave)
}

// ──────────────────────────────────────────────────────────────────────────────
// Producto / Ticket
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_PrecioNegativo(t *testing.T) {
	f := newFixture()
	_, err := f.products.Create(context.Background(), dto.CreateProductRequest{Name: "Leche", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func seedTicket(t *testing.T, f *fixture) (*dto.TicketResponse, []*dto.ProductResponse) {
	t.Helper()
	ctx := context.Background()
	loc := seedLocation(t, f, "Calle Feria 1")
	var products []*dto.ProductResponse
	for _, name := range []string{"Leche", "Pan", "Huevos"} {
		p, err := f.products.Create(ctx, dto.CreateProductRequest{Name: name, Price: decimal.RequireFromString("1.50")})
		require.NoError(t, err)
		products = append(products, p)
	}
	tk, err := f.tickets.Create(ctx, dto.CreateTicketRequest{
		Date:       dto.NewDate(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
		Discount:   decimal.RequireFromString("5"),
		LocationID: loc.ID,
		ProductIDs: []int64{products[0].ID, products[1].ID},
	})
	require.NoError(t, err)
	return tk, products
}

func TestTicket_CreateResuelveReferencias(t *testing.T) {
	f := newFixture()
	tk, _ := seedTicket(t, f)

	assert.Len(t, tk.Products, 2)
	assert.Equal(t, "Calle Feria 1", tk.Location.Address)
	assert.Nil(t, tk.Total)

	got, err := f.tickets.GetByID(context.Background(), tk.ID)
	require.NoError(t, err)
	assert.Len(t, got.Products, 2)
}

func TestTicket_SinProductosResueltos(t *testing.T) {
	f := newFixture()
	loc := seedLocation(t, f, "Calle Feria 1")

	_, err := f.tickets.Create(context.Background(), dto.CreateTicketRequest{
		Date: dto.NewDate(time.Now()), LocationID: loc.ID, ProductIDs: []int64{404},
	})
	assertKey(t, err, domain.ErrNotFound, domain.MsgTicketProductsNotFound)

	_, err = f.tickets.Create(context.Background(), dto.CreateTicketRequest{
		Date: dto.NewDate(time.Now()), LocationID: 999, ProductIDs: []int64{1},
	})
	assertKey(t, err, domain.ErrNotFound, domain.MsgTicketLocationNotFound)
}

func TestTicket_AddProductNoEsIdempotente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	tk, products := seedTicket(t, f)

	out, err := f.tickets.AddProduct(ctx, tk.ID, products[2].ID)
	require.NoError(t, err)
	assert.Len(t, out.Products, 3)

	_, err = f.tickets.AddProduct(ctx, tk.ID, products[2].ID)
	assertKey(t, err, domain.ErrInvalidInput, domain.MsgTicketProductAlreadyLinked)

	_, err = f.tickets.AddProduct(ctx, tk.ID, 999)
	assertKey(t, err, domain.ErrNotFound, domain.MsgTicketProductNotFound)
}

func TestTicket_RemoveProductAusenteFalla(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	tk, products := seedTicket(t, f)

	out, err := f.tickets.RemoveProduct(ctx, tk.ID, products[0].ID)
	require.NoError(t, err)
	assert.Len(t, out.Products, 1)

	_, err = f.tickets.RemoveProduct(ctx, tk.ID, products[0].ID)
	assertKey(t, err, domain.ErrInvalidInput, domain.MsgTicketProductNotLinked)

	got, _ := f.tickets.GetByID(ctx, tk.ID)
	assert.Len(t, got.Products, 1)
}

func TestTicket_ProductoReferenciadoNoSeBorra(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	tk, products := seedTicket(t, f)

	err := f.products.Delete(ctx, products[0].ID)
	assert.ErrorIs(t, err, domain.ErrInUse)

	require.NoError(t, f.tickets.Delete(ctx, tk.ID))
	require.NoError(t, f.products.Delete(ctx, products[0].ID))
}

// fakePDF devuelve un PDF ficticio.
type fakePDF struct{ got *entity.Ticket }

func (g *fakePDF) GenerateTicketPDF(_ context.Context, t *entity.Ticket) ([]byte, error) {
	g.got = t
	return []byte("%PDF-1.4"), nil
}

func TestTicketReceipt_Download(t *testing.T) {
	f := newFixture()
	tk, _ := seedTicket(t, f)
	gen := &fakePDF{}
	uc := usecase.NewTicketReceiptUseCase(f.tickets, gen)

	b, name, err := uc.DownloadTicketPDF(context.Background(), tk.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), b)
	assert.Equal(t, fmt.Sprintf("ticket_%d.pdf", tk.ID), name)
	require.NotNil(t, gen.got)
	assert.Len(t, gen.got.Products, 2)

	_, _, err = uc.DownloadTicketPDF(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Unicidad por clave natural
// ──────────────────────────────────────────────────────────────────────────────

// uniqueCase crea y actualiza una entidad variando solo su clave natural.
type uniqueCase struct {
	name   string
	msg    string
	create func(t *testing.T, f *fixture, key string) (int64, error)
	update func(f *fixture, id int64, key string) error
}

func uniqueCases() []uniqueCase {
	ctx := context.Background()
	region := func(t *testing.T, f *fixture) int64 {
		t.Helper()
		list, err := f.regions.List(ctx, dto.PageRequest{})
		require.NoError(t, err)
		if len(list.Items) > 0 {
			return list.Items[0].ID
		}
		r, err := f.regions.Create(ctx, dto.CreateRegionRequest{Code: "99", Name: "Base"})
		require.NoError(t, err)
		return r.ID
	}
	refs := func(t *testing.T, f *fixture) (int64, int64) {
		t.Helper()
		markets, err := f.markets.List(ctx, dto.PageRequest{})
		require.NoError(t, err)
		if len(markets.Items) > 0 {
			provs, err := f.provinces.List(ctx, dto.PageRequest{})
			require.NoError(t, err)
			return markets.Items[0].ID, provs.Items[0].ID
		}
		sm, err := f.markets.Create(ctx, dto.CreateSupermarketRequest{Name: "Mercadona"})
		require.NoError(t, err)
		p, err := f.provinces.Create(ctx, dto.CreateProvinceRequest{Code: "41", Name: "Sevilla", RegionID: region(t, f)})
		require.NoError(t, err)
		return sm.ID, p.ID
	}

	return []uniqueCase{
		{
			name: "region", msg: domain.MsgRegionCodeExists,
			create: func(_ *testing.T, f *fixture, key string) (int64, error) {
				r, err := f.regions.Create(ctx, dto.CreateRegionRequest{Code: key, Name: "R" + key})
				if err != nil {
					return 0, err
				}
				return r.ID, nil
			},
			update: func(f *fixture, id int64, key string) error {
				_, err := f.regions.Update(ctx, id, dto.CreateRegionRequest{Code: key, Name: "Cambiada"})
				return err
			},
		},
		{
			name: "province", msg: domain.MsgProvinceCodeExists,
			create: func(t *testing.T, f *fixture, key string) (int64, error) {
				p, err := f.provinces.Create(ctx, dto.CreateProvinceRequest{Code: key, Name: "P" + key, RegionID: region(t, f)})
				if err != nil {
					return 0, err
				}
				return p.ID, nil
			},
			update: func(f *fixture, id int64, key string) error {
				got, err := f.provinces.GetByID(ctx, id)
				if err != nil {
					return err
				}
				_, err = f.provinces.Update(ctx, id, dto.CreateProvinceRequest{Code: key, Name: "Cambiada", RegionID: got.Region.ID})
				return err
			},
		},
		{
			name: "supermarket", msg: domain.MsgSupermarketNameExists,
			create: func(_ *testing.T, f *fixture, key string) (int64, error) {
				s, err := f.markets.Create(ctx, dto.CreateSupermarketRequest{Name: key})
				if err != nil {
					return 0, err
				}
				return s.ID, nil
			},
			update: func(f *fixture, id int64, key string) error {
				_, err := f.markets.Update(ctx, id, dto.CreateSupermarketRequest{Name: key})
				return err
			},
		},
		{
			name: "location", msg: domain.MsgLocationAddressExists,
			create: func(t *testing.T, f *fixture, key string) (int64, error) {
				sm, prov := refs(t, f)
				l, err := f.locations.Create(ctx, dto.CreateLocationRequest{Address: key, City: "Sevilla", SupermarketID: sm, ProvinceID: prov})
				if err != nil {
					return 0, err
				}
				return l.ID, nil
			},
			update: func(f *fixture, id int64, key string) error {
				got, err := f.locations.GetByID(ctx, id)
				if err != nil {
					return err
				}
				_, err = f.locations.Update(ctx, id, dto.CreateLocationRequest{
					Address: key, City: "Dos Hermanas", SupermarketID: got.Supermarket.ID, ProvinceID: got.Province.ID,
				})
				return err
			},
		},
		{
			name: "category", msg: domain.MsgCategoryNameExists,
			create: func(_ *testing.T, f *fixture, key string) (int64, error) {
				c, err := f.cats.Create(ctx, dto.CreateCategoryRequest{Name: key}, nil)
				if err != nil {
					return 0, err
				}
				return c.ID, nil
			},
			update: func(f *fixture, id int64, key string) error {
				_, err := f.cats.Update(ctx, id, dto.CreateCategoryRequest{Name: key}, nil)
				return err
			},
		},
		{
			name: "product", msg: domain.MsgProductNameExists,
			create: func(_ *testing.T, f *fixture, key string) (int64, error) {
				p, err := f.products.Create(ctx, dto.CreateProductRequest{Name: key, Price: decimal.RequireFromString("1.00")})
				if err != nil {
					return 0, err
				}
				return p.ID, nil
			},
			update: func(f *fixture, id int64, key string) error {
				_, err := f.products.Update(ctx, id, dto.CreateProductRequest{Name: key, Price: decimal.RequireFromString("2.00")})
				return err
			},
		},
	}
}

func TestUnicidad_ClaveNatural(t *testing.T) {
	for _, tc := range uniqueCases() {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()

			a, err := tc.create(t, f, "01")
			require.NoError(t, err)
			_, err = tc.create(t, f, "02")
			require.NoError(t, err)

			_, err = tc.create(t, f, "01")
			assertKey(t, err, domain.ErrDuplicate, tc.msg)

			err = tc.update(f, a, "02")
			assertKey(t, err, domain.ErrDuplicate, tc.msg)

			assert.NoError(t, tc.update(f, a, "01"), "conservar la clave propia no es duplicado")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Importes y errores de imagen
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_LimitesDelPrecio(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for _, price := range []string{"10000000000", "1.005", "-0.01"} {
		_, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "P" + price, Price: decimal.RequireFromString(price)})
		assertKey(t, err, domain.ErrInvalidInput, domain.MsgValidation)
	}
	for _, price := range []string{"9999999999.99", "0", "1.50", "1.500"} {
		_, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "P" + price, Price: decimal.RequireFromString(price)})
		assert.NoError(t, err, price)
	}
}

func TestTicket_LimitesDelDescuento(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	tk, products := seedTicket(t, f)

	req := func(discount string) dto.CreateTicketRequest {
		return dto.CreateTicketRequest{
			Date:       dto.NewDate(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
			Discount:   decimal.RequireFromString(discount),
			LocationID: tk.Location.ID,
			ProductIDs: []int64{products[0].ID},
		}
	}
	for _, d := range []string{"1000", "100.01", "5.125", "-1"} {
		_, err := f.tickets.Create(ctx, req(d))
		assertKey(t, err, domain.ErrInvalidInput, domain.MsgValidation)

		_, err = f.tickets.Update(ctx, tk.ID, req(d))
		assertKey(t, err, domain.ErrInvalidInput, domain.MsgValidation)
	}
	_, err := f.tickets.Create(ctx, req("100"))
	assert.NoError(t, err)
}

func TestCategory_ExtensionNoPermitidaEsEntradaInvalida(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Electrónica"}, image("script.sh"))
	assertKey(t, err, domain.ErrInvalidInput, domain.MsgCategoryImageType)
	assert.Empty(t, f.storage.saved)

	c, err := f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Electrónica"}, image("a.png"))
	require.NoError(t, err)
	_, err = f.cats.Update(ctx, c.ID, dto.CreateCategoryRequest{Name: "Electrónica"}, image("b.exe"))
	assertKey(t, err, domain.ErrInvalidInput, domain.MsgCategoryImageType)
	assert.Empty(t, f.storage.deleted, "la imagen actual no se borra si la nueva se rechaza")

	got, err := f.cats.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "/images/stored-a.png", got.Image)
}

func TestCategory_UpdateFallaAlGuardarLimpiaLaReferencia(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c, err := f.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Electrónica"}, image("a.png"))
	require.NoError(t, err)
	f.storage.saveErr = errors.New("s3 caído")

	_, err = f.cats.Update(ctx, c.ID, dto.CreateCategoryRequest{Name: "Electrónica"}, image("b.png"))
	assertKey(t, err, domain.ErrStorage, domain.MsgCategoryImageSave)
	assert.Equal(t, []string{"stored-a.png"}, f.storage.deleted)

	got, err := f.cats.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Image, "la fila no apunta a la imagen borrada")
}
