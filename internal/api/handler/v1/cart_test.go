package v1

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/festiconf/billetterie-api/internal/api/middleware"
	"github.com/festiconf/billetterie-api/internal/domain"
	"github.com/festiconf/billetterie-api/internal/service"
)

type stubCartService struct {
	cart    domain.Cart
	item    domain.CartItem
	tickets []domain.Ticket
	err     error
}

func (s *stubCartService) GetCart(_ context.Context, _ uint) (domain.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) AddItem(_ context.Context, _ uint, _ domain.TicketType, _, _ string, _ time.Time) (domain.CartItem, error) {
	return s.item, s.err
}

func (s *stubCartService) RemoveItem(_ context.Context, _, _ uint) error {
	return s.err
}

func (s *stubCartService) Clear(_ context.Context, _ uint) error {
	return s.err
}

func (s *stubCartService) Confirm(_ context.Context, _ uint) ([]domain.Ticket, error) {
	return s.tickets, s.err
}

func cartTestRouter(svc CartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	asUser := func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, uint(1))
	}

	h := NewCartHandler(svc)
	router.GET("/cart", asUser, h.HandleGetCart)
	router.DELETE("/cart", asUser, h.HandleClearCart)
	router.POST("/cart/items", asUser, h.HandleAddItem)
	router.DELETE("/cart/items/:id", asUser, h.HandleRemoveItem)
	router.POST("/cart/confirm", asUser, h.HandleConfirmCart)

	return router
}

func TestHandleAddItem_Created(t *testing.T) {
	router := cartTestRouter(&stubCartService{
		item: domain.CartItem{ID: 1, Type: domain.TicketNormal, Price: 30},
	})

	body := bytes.NewBufferString(`{"type":"NORMAL","name":"Alice Martin","email":"alice@example.com","date_of_birth":"1995-04-02"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", body)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandleAddItem_IneligiblePassCulture(t *testing.T) {
	router := cartTestRouter(&stubCartService{err: service.ErrPassCultureAge})

	body := bytes.NewBufferString(`{"type":"PASS_CULTURE","name":"Jean Dupont","email":"jean@example.com","date_of_birth":"2013-04-02"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", body)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAddItem_InvalidBody(t *testing.T) {
	router := cartTestRouter(&stubCartService{})

	body := bytes.NewBufferString(`{"type":"NORMAL"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", body)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleConfirmCart_Empty(t *testing.T) {
	router := cartTestRouter(&stubCartService{err: service.ErrCartEmpty})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/confirm", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleConfirmCart_Created(t *testing.T) {
	router := cartTestRouter(&stubCartService{
		tickets: []domain.Ticket{{ID: 1, Type: domain.TicketNormal, Price: 30}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/confirm", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"NORMAL"`)
}

func TestHandleRemoveItem_NotFound(t *testing.T) {
	router := cartTestRouter(&stubCartService{err: service.ErrCartItemNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cart/items/9", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
