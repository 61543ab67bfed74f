package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripdeskhq/tripdesk/internal/webserver"
)

func registerCmsRoutes() {
	webserver.ApiGET("/cms/content", getContent)
	webserver.ApiPUT("/cms/content/:section", updateContentSection)
}

func getContent(c echo.Context) error {
	return ok(c, GetStore(c).CMS())
}

// updateContentSection merges fields into one section of the site content.
// List sections (faqs, announcements) take an "items" array and are replaced
// wholesale.
func updateContentSection(c echo.Context) error {
	section := c.Param("section")
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse content section", err.Error())
	}
	content, err := GetStore(c).UpdateCMSSection(section, fields)
	if err != nil {
		return failStore(c, err, "Content section")
	}
	return ok(c, content)
}
