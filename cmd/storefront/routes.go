package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MikeMC777/food-storefront/internal/cart"
	"github.com/MikeMC777/food-storefront/internal/httpx"
	"github.com/MikeMC777/food-storefront/internal/menu"
	"github.com/MikeMC777/food-storefront/internal/order"
	"github.com/MikeMC777/food-storefront/internal/proxy"
	"github.com/MikeMC777/food-storefront/internal/user"
)

type orders interface {
	Place(ctx context.Context, req order.PlaceOrderRequest) (int64, error)
	History(ctx context.Context, userID int64) ([]order.Summary, error)
}

type accounts interface {
	Signup(ctx context.Context, in user.SignupRequest) (int64, error)
	Login(ctx context.Context, in user.LoginRequest) (*user.User, error)
	Get(ctx context.Context, id int64) (*user.User, error)
}

type deps struct {
	Menu      menu.Repository
	Cart      cart.Repository
	Orders    orders
	Accounts  accounts
	Images    *proxy.ImageProxy
	StaticDir string
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.CORS())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if d.StaticDir != "" {
		r.Static("/static", d.StaticDir)
	}

	api := r.Group("/api")
	{
		api.GET("/menu", listMenuHandler(d.Menu))

		api.POST("/login", loginHandler(d.Accounts))
		api.POST("/signup", signupHandler(d.Accounts))
		api.GET("/user/:user_id", getUserHandler(d.Accounts))

		api.POST("/cart", addToCartHandler(d.Cart))
		api.GET("/cart/:user_id", getCartHandler(d.Cart))
		api.POST("/cart/:user_id/update", updateCartHandler(d.Cart))

		api.POST("/orders", placeOrderHandler(d.Orders))
		api.GET("/orders/:user_id", listOrdersHandler(d.Orders))

		api.GET("/image-proxy", imageProxyHandler(d.Images))

		admin := api.Group("/admin/menu")
		admin.POST("", createMenuItemHandler(d.Menu))
		admin.GET("/:item_id", getMenuItemHandler(d.Menu))
		admin.PUT("/:item_id", updateMenuItemHandler(d.Menu))
		admin.DELETE("/:item_id", deleteMenuItemHandler(d.Menu))
	}
	return r
}
