package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/roach88/foodorders/internal/cart"
	"github.com/roach88/foodorders/internal/ledger"
	"github.com/roach88/foodorders/internal/menu"
)

// Error codes in JSON error bodies.
const (
	codeNotFound   = "not_found"
	codeValidation = "validation"
	codeBadRequest = "bad_request"
	codeInternal   = "internal"
)

type errorBody struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type cartView struct {
	ID    string          `json:"id"`
	Lines []cart.LineItem `json:"lines"`
	Total decimal.Decimal `json:"total"`
	Empty bool            `json:"empty"`
}

type addItemRequest struct {
	Name string `json:"name" binding:"required"`
}

type commitRequest struct {
	Customer string `json:"customer"`
}

func newCartView(id string, c *cart.Cart) cartView {
	return cartView{ID: id, Lines: c.Lines(), Total: c.Total(), Empty: c.IsEmpty()}
}

// writeError maps core errors to HTTP statuses.
func (s *Server) writeError(c *gin.Context, err error) {
	var vErr *cart.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, errorBody{apiError{Code: codeValidation, Message: vErr.Message, Field: vErr.Field}})
	case errors.Is(err, menu.ErrNotFound), errors.Is(err, ledger.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, errorBody{apiError{Code: codeNotFound, Message: err.Error()}})
	default:
		s.logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, errorBody{apiError{Code: codeInternal, Message: "internal error"}})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorBody{apiError{Code: codeBadRequest, Message: msg}})
}

// withSession resolves :id and runs fn with the session locked.
func (s *Server) withSession(c *gin.Context, fn func(id string, sess *session)) {
	id := c.Param("id")
	sess, ok := s.sessions.get(id)
	if !ok {
		c.JSON(http.StatusNotFound, errorBody{apiError{Code: codeNotFound, Message: "cart " + id + " not found"}})
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	fn(id, sess)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": s.catalog.ListItems()})
}

func (s *Server) handleCreateCart(c *gin.Context) {
	id := s.ids.Generate()
	crt := cart.New(s.catalog)
	s.sessions.put(id, crt)
	s.logger.Debug("cart opened", "cart_id", id)
	c.JSON(http.StatusCreated, newCartView(id, crt))
}

func (s *Server) handleGetCart(c *gin.Context) {
	s.withSession(c, func(id string, sess *session) {
		c.JSON(http.StatusOK, newCartView(id, sess.cart))
	})
}

func (s *Server) handleDeleteCart(c *gin.Context) {
	if !s.sessions.delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, errorBody{apiError{Code: codeNotFound, Message: "cart " + c.Param("id") + " not found"}})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleAddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body must be {\"name\": \"<menu item>\"}")
		return
	}
	s.withSession(c, func(id string, sess *session) {
		if err := sess.cart.AddItem(req.Name); err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, newCartView(id, sess.cart))
	})
}

func (s *Server) handleClearCart(c *gin.Context) {
	s.withSession(c, func(id string, sess *session) {
		sess.cart.Reset()
		c.JSON(http.StatusOK, newCartView(id, sess.cart))
	})
}

func (s *Server) handleInvoice(c *gin.Context) {
	s.withSession(c, func(_ string, sess *session) {
		text, err := sess.cart.InvoiceText(c.Query("customer"))
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.String(http.StatusOK, text)
	})
}

func (s *Server) handleCommit(c *gin.Context) {
	var req commitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body must be {\"customer\": \"<name>\"}")
		return
	}
	s.withSession(c, func(_ string, sess *session) {
		order, err := s.ledger.Commit(c.Request.Context(), req.Customer, sess.cart)
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	})
}

func (s *Server) handleListOrders(c *gin.Context) {
	orders, err := s.ledger.AllOrders(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (s *Server) handleGetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "order id must be an integer")
		return
	}
	order, err := s.ledger.Order(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) handleRevenue(c *gin.Context) {
	total, err := s.ledger.TotalRevenue(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_revenue": total})
}

func (s *Server) handleCustomers(c *gin.Context) {
	names, err := s.ledger.DistinctCustomers(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": names})
}
