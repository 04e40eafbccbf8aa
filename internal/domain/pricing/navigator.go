package pricing

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Navigator sends the visitor to a call-to-action destination
type Navigator interface {
	Navigate(c *gin.Context, href string)
}

// RedirectNavigator answers with an HTTP redirect. The href is used as is.
type RedirectNavigator struct {
	// Status defaults to 303 See Other
	Status int
}

func (n RedirectNavigator) Navigate(c *gin.Context, href string) {
	status := n.Status
	if status == 0 {
		status = http.StatusSeeOther
	}
	c.Redirect(status, href)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(c *gin.Context, href string)

func (f NavigatorFunc) Navigate(c *gin.Context, href string) { f(c, href) }
