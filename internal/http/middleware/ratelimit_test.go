package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"partyroom/internal/service"
)

// на аутентифицированном маршруте лимитер стоит после RoomAuth и
// считает окно по игроку, а не по адресу
func TestRateKey_AfterAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service.InitJWT()

	token, err := service.IssueRoomToken("p1", "ABCD")
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	var key string
	r.POST("/api/rooms/:code/vote", RoomAuth(), func(c *gin.Context) {
		key = rateKey(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/rooms/ABCD/vote?token="+token, nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("запрос с токеном должен проходить, код %d", w.Code)
	}
	if key != "rl:/api/rooms/:code/vote:p1" {
		t.Errorf("ключ лимитера должен считаться по игроку, получено %q", key)
	}
}

// без аутентификации окно считается по адресу клиента
func TestRateKey_Anonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/rooms", nil)

	key := rateKey(c)
	if !strings.HasSuffix(key, c.ClientIP()) {
		t.Errorf("анонимный ключ должен оканчиваться адресом, получено %q", key)
	}
}
