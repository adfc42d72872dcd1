//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"levelup-cart/internal/handler/api"
	resdto "levelup-cart/internal/handler/dto/response"
	"levelup-cart/internal/handler/middleware"
	"levelup-cart/internal/pkg/config"
	"levelup-cart/internal/usecase"
	"levelup-cart/tests/common/builder"
	"levelup-cart/tests/common/httptest"
	usecasemock "levelup-cart/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockCartUseCase
	handler  *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockCartUseCase(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockUC)

	cfg := config.NewTestConfig()
	cart := s.router.Group("/cart")
	cart.Use(middleware.CartSession(cfg.Cookie))
	cart.GET("", s.handler.GetCart)
	cart.DELETE("", s.handler.ClearCart)
	cart.POST("/items", s.handler.AddItem)
	cart.DELETE("/items/:productId", s.handler.RemoveItem)
	cart.POST("/items/:productId/increase", s.handler.IncreaseItem)
	cart.POST("/items/:productId/decrease", s.handler.DecreaseItem)
	cart.POST("/redeem", s.handler.RedeemReward)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func sampleView() usecase.CartView {
	item := builder.NewCartItemBuilder().WithQuantity(2).Build()
	return usecase.CartView{
		Items:      builder.BuildSnapshot(item),
		Count:      2,
		TotalPrice: item.Product.Price * 2,
	}
}

func (s *CartHandlerTestSuite) TestGetCart() {
	s.Run("success: returns the cart view and sets a session cookie", func() {
		s.mockUC.EXPECT().GetCart(gomock.Any(), gomock.Nil()).Return(sampleView()).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Count)
		s.Len(response.Items, 1)

		cookie := httptest.ExtractCookie(rec, "cart_session")
		s.Require().NotNil(cookie)
		s.NotEmpty(cookie.Value)
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/cart/items"

	s.Run("success: returns 200 OK with the updated view", func() {
		s.mockUC.EXPECT().
			AddProduct(gomock.Any(), gomock.Any(), gomock.Nil(), "JM001", 2).
			Return(sampleView(), nil).Times(1)

		body := map[string]any{"product_id": "JM001", "quantity": 2}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("JM001", response.Items[0].Product.ID)
	})

	s.Run("success: omitted quantity defaults to one", func() {
		s.mockUC.EXPECT().
			AddProduct(gomock.Any(), gomock.Any(), gomock.Nil(), "JM001", 1).
			Return(sampleView(), nil).Times(1)

		body := map[string]any{"product_id": "JM001"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request when product_id is missing", func() {
		body := map[string]any{"quantity": 2}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 Not Found for an unknown product", func() {
		s.mockUC.EXPECT().
			AddProduct(gomock.Any(), gomock.Any(), gomock.Nil(), "missing", 1).
			Return(usecase.CartView{}, usecase.ErrProductNotFound).Times(1)

		body := map[string]any{"product_id": "missing"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}

func (s *CartHandlerTestSuite) TestRedeemReward() {
	url := "/cart/redeem"

	s.Run("success: returns 200 OK", func() {
		s.mockUC.EXPECT().
			RedeemReward(gomock.Any(), gomock.Any(), gomock.Nil(), "RW001").
			Return(sampleView(), nil).Times(1)

		body := map[string]any{"reward_id": "RW001"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for an unknown reward", func() {
		s.mockUC.EXPECT().
			RedeemReward(gomock.Any(), gomock.Any(), gomock.Nil(), "missing").
			Return(usecase.CartView{}, usecase.ErrRewardNotFound).Times(1)

		body := map[string]any{"reward_id": "missing"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reward not found")
	})

	s.Run("error: 422 Unprocessable Entity for an inactive reward", func() {
		s.mockUC.EXPECT().
			RedeemReward(gomock.Any(), gomock.Any(), gomock.Nil(), "RW004").
			Return(usecase.CartView{}, usecase.ErrRewardInactive).Times(1)

		body := map[string]any{"reward_id": "RW004"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Reward is not active")
	})
}

func (s *CartHandlerTestSuite) TestItemMutations() {
	s.Run("remove returns the updated view", func() {
		s.mockUC.EXPECT().
			RemoveItem(gomock.Any(), gomock.Nil(), "JM001").
			Return(usecase.CartView{Items: nil, Count: 0}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/JM001", nil, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(0, response.Count)
	})

	s.Run("increase returns the updated view", func() {
		s.mockUC.EXPECT().
			IncreaseItem(gomock.Any(), gomock.Nil(), "JM001").
			Return(sampleView()).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items/JM001/increase", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("decrease returns the updated view", func() {
		s.mockUC.EXPECT().
			DecreaseItem(gomock.Any(), gomock.Nil(), "JM001").
			Return(sampleView()).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items/JM001/decrease", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("clear returns the emptied view", func() {
		s.mockUC.EXPECT().
			ClearCart(gomock.Any(), gomock.Nil()).
			Return(usecase.CartView{}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
