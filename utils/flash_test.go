package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flashContext(cookies []*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		c.Request.AddCookie(cookie)
	}
	return c, w
}

func TestFlashRoundTrip(t *testing.T) {
	c, w := flashContext(nil)
	SetFlash(c, "Post deleted successfully!")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	next, _ := flashContext(cookies)
	assert.Equal(t, "Post deleted successfully!", TakeFlash(next))
}

func TestTakeFlashClearsNotice(t *testing.T) {
	c, w := flashContext(nil)
	SetFlash(c, "one shot")

	next, nextW := flashContext(w.Result().Cookies())
	require.Equal(t, "one shot", TakeFlash(next))

	// The take must expire the cookie so the notice shows only once.
	var cleared bool
	for _, cookie := range nextW.Result().Cookies() {
		if cookie.Name == "flash" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestTakeFlashEmpty(t *testing.T) {
	c, _ := flashContext(nil)
	assert.Equal(t, "", TakeFlash(c))
}
