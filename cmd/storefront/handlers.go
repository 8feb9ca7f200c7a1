package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/food-storefront/internal/cart"
	"github.com/MikeMC777/food-storefront/internal/httpx"
	"github.com/MikeMC777/food-storefront/internal/menu"
	"github.com/MikeMC777/food-storefront/internal/money"
	"github.com/MikeMC777/food-storefront/internal/order"
	"github.com/MikeMC777/food-storefront/internal/proxy"
	"github.com/MikeMC777/food-storefront/internal/user"
)

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httpx.Fail(c, http.StatusBadRequest, "Invalid "+strings.ReplaceAll(name, "_", " "), nil)
		return 0, false
	}
	return id, true
}

// ===== Menu =====

// listMenuHandler godoc
// @Summary  List menu items
// @Tags     menu
// @Produce  json
// @Param    category query string false "category filter, 'all' for everything"
// @Success  200 {object} menu.ListResponse
// @Failure  500 {object} httpx.ErrorResponse
// @Router   /menu [get]
func listMenuHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context(), c.DefaultQuery("category", "all"))
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "An error occurred while fetching menu", err)
			return
		}
		c.JSON(http.StatusOK, menu.ListResponse{Status: "success", Items: items})
	}
}

// @Summary  Add a menu item
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body body menu.CreateItemRequest true "item"
// @Success  200 {object} menu.CreateItemResponse
// @Failure  400 {object} httpx.ErrorResponse
// @Router   /admin/menu [post]
func createMenuItemHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menu.CreateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		if req.Name == "" || req.Description == "" || req.Category == "" || !req.Price.IsPositive() {
			httpx.Fail(c, http.StatusBadRequest, "All fields are required", nil)
			return
		}
		it := &menu.Item{
			Name:         req.Name,
			Description:  req.Description,
			Category:     req.Category,
			Price:        money.New(req.Price),
			Availability: true,
		}
		if err := repo.Create(c.Request.Context(), it); err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "An error occurred while adding menu item", err)
			return
		}
		c.JSON(http.StatusOK, menu.CreateItemResponse{
			Status: "success", Message: "Menu item added successfully", ItemID: it.ID,
		})
	}
}

func getMenuItemHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "item_id")
		if !ok {
			return
		}
		it, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, menu.ErrNotFound) {
			httpx.Fail(c, http.StatusNotFound, "Item not found", nil)
			return
		}
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "An error occurred while fetching menu item", err)
			return
		}
		c.JSON(http.StatusOK, menu.ItemResponse{Status: "success", Item: *it})
	}
}

func updateMenuItemHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "item_id")
		if !ok {
			return
		}
		var req menu.UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		if req.Name == "" || req.Category == "" || !req.Price.IsPositive() {
			httpx.Fail(c, http.StatusBadRequest, "Name, category and price are required", nil)
			return
		}
		found, err := repo.Update(c.Request.Context(), &menu.Item{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			Price:       money.New(req.Price),
			Image:       req.Image,
		})
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "An error occurred while updating menu item", err)
			return
		}
		if !found {
			httpx.Fail(c, http.StatusNotFound, "Item not found", nil)
			return
		}
		httpx.OK(c, http.StatusOK, "Menu item updated successfully")
	}
}

func deleteMenuItemHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "item_id")
		if !ok {
			return
		}
		found, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "An error occurred while deleting menu item", err)
			return
		}
		if !found {
			httpx.Fail(c, http.StatusNotFound, "Item not found", nil)
			return
		}
		httpx.OK(c, http.StatusOK, "Menu item deleted successfully")
	}
}

// ===== Users =====

// @Summary  Log in
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body user.LoginRequest true "credentials"
// @Success  200 {object} user.UserResponse
// @Failure  400 {object} httpx.ErrorResponse
// @Failure  401 {object} httpx.ErrorResponse
// @Router   /login [post]
func loginHandler(svc accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		u, err := svc.Login(c.Request.Context(), req)
		switch {
		case errors.Is(err, user.ErrMissingFields):
			httpx.Fail(c, http.StatusBadRequest, "Email and password are required", nil)
		case errors.Is(err, user.ErrInvalidCredentials):
			httpx.Fail(c, http.StatusUnauthorized, "Invalid credentials", nil)
		case err != nil:
			httpx.Fail(c, http.StatusInternalServerError, "An error occurred during login", err)
		default:
			c.JSON(http.StatusOK, user.UserResponse{Status: "success", User: u})
		}
	}
}

// @Summary  Register
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body user.SignupRequest true "new user"
// @Success  200 {object} user.SignupResponse
// @Failure  400 {object} httpx.ErrorResponse
// @Failure  409 {object} httpx.ErrorResponse
// @Router   /signup [post]
func signupHandler(svc accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		id, err := svc.Signup(c.Request.Context(), req)
		switch {
		case errors.Is(err, user.ErrMissingFields):
			httpx.Fail(c, http.StatusBadRequest, "All fields are required", nil)
		case errors.Is(err, user.ErrAlreadyExist):
			httpx.Fail(c, http.StatusConflict, "Email already registered", nil)
		case err != nil:
			httpx.Fail(c, http.StatusInternalServerError, "An error occurred during registration", err)
		default:
			c.JSON(http.StatusOK, user.SignupResponse{Status: "success", Message: "Registration successful", UserID: id})
		}
	}
}

func getUserHandler(svc accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "user_id")
		if !ok {
			return
		}
		u, err := svc.Get(c.Request.Context(), id)
		if errors.Is(err, user.ErrNotFound) {
			httpx.Fail(c, http.StatusNotFound, "User not found", nil)
			return
		}
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "An error occurred while fetching user", err)
			return
		}
		c.JSON(http.StatusOK, user.UserResponse{Status: "success", User: u})
	}
}

// ===== Cart =====

// @Summary  Add an item to the cart
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    body body cart.AddRequest true "line"
// @Success  200 {object} httpx.MessageResponse
// @Failure  400 {object} httpx.ErrorResponse
// @Router   /cart [post]
func addToCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cart.AddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		if req.UserID <= 0 || req.ItemID <= 0 {
			httpx.Fail(c, http.StatusBadRequest, "User ID and Item ID are required", nil)
			return
		}
		qty := 1
		if req.Quantity != nil {
			qty = *req.Quantity
		}
		if qty <= 0 {
			httpx.Fail(c, http.StatusBadRequest, "Quantity must be positive", nil)
			return
		}
		if err := repo.Add(c.Request.Context(), req.UserID, req.ItemID, qty); err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "An error occurred while adding to cart", err)
			return
		}
		httpx.OK(c, http.StatusOK, "Item added to cart")
	}
}

// @Summary  Cart of a user
// @Tags     cart
// @Produce  json
// @Param    user_id path int true "user id"
// @Success  200 {object} cart.Response
// @Router   /cart/{user_id} [get]
func getCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "user_id")
		if !ok {
			return
		}
		lines, err := repo.List(c.Request.Context(), userID)
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "An error occurred while fetching cart", err)
			return
		}
		c.JSON(http.StatusOK, cart.Response{Status: "success", Items: lines, Total: money.New(cart.Total(lines))})
	}
}

func updateCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "user_id")
		if !ok {
			return
		}
		var req cart.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		if req.ItemID <= 0 || req.Quantity == nil {
			httpx.Fail(c, http.StatusBadRequest, "Item ID and quantity are required", nil)
			return
		}
		if err := repo.SetQuantity(c.Request.Context(), userID, req.ItemID, *req.Quantity); err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "An error occurred while updating cart", err)
			return
		}
		httpx.OK(c, http.StatusOK, "Cart updated")
	}
}

// ===== Orders =====

// placeOrderHandler godoc
// @Summary  Place an order from the user's cart
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body order.PlaceOrderRequest true "checkout"
// @Success  200 {object} order.PlaceOrderResponse
// @Failure  400 {object} httpx.ErrorResponse
// @Failure  500 {object} httpx.ErrorResponse
// @Router   /orders [post]
func placeOrderHandler(svc orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "All fields are required", err)
			return
		}
		id, err := svc.Place(c.Request.Context(), req)
		switch {
		case errors.Is(err, order.ErrValidation):
			httpx.Fail(c, http.StatusBadRequest, "All fields are required", nil)
		case errors.Is(err, order.ErrEmptyCart):
			httpx.Fail(c, http.StatusBadRequest, "Cart is empty", nil)
		case errors.Is(err, order.ErrConnection):
			httpx.Fail(c, http.StatusInternalServerError, "Database connection failed", err)
		case err != nil:
			httpx.Fail(c, http.StatusInternalServerError, "An error occurred while placing order", err)
		default:
			c.JSON(http.StatusOK, order.PlaceOrderResponse{
				Status: "success", Message: "Order placed successfully", OrderID: id,
			})
		}
	}
}

// listOrdersHandler godoc
// @Summary  Order history of a user, newest first
// @Tags     orders
// @Produce  json
// @Param    user_id path int true "user id"
// @Success  200 {object} order.ListOrdersResponse
// @Failure  500 {object} httpx.ErrorResponse
// @Router   /orders/{user_id} [get]
func listOrdersHandler(svc orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "user_id")
		if !ok {
			return
		}
		out, err := svc.History(c.Request.Context(), userID)
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "An error occurred while fetching orders", err)
			return
		}
		c.JSON(http.StatusOK, order.ListOrdersResponse{Status: "success", Orders: out})
	}
}

// ===== Image proxy =====

func imageProxyHandler(p *proxy.ImageProxy) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("url")
		if raw == "" {
			c.String(http.StatusBadRequest, "Image URL not provided")
			return
		}
		res, err := p.Fetch(c.Request.Context(), raw)
		if errors.Is(err, proxy.ErrBadURL) {
			c.String(http.StatusBadRequest, "Invalid image URL")
			return
		}
		if err != nil {
			rid, _ := c.Get("rid")
			log.Printf("[proxy] rid=%v %v", rid, err)
			c.String(http.StatusInternalServerError, "Failed to fetch image")
			return
		}
		defer res.Body.Close()
		c.DataFromReader(http.StatusOK, res.ContentLength, res.Header.Get("Content-Type"), res.Body, nil)
	}
}
