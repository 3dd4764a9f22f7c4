//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"crisiscompass/internal/mm"
	"crisiscompass/internal/nav"
)

// readUUIDCookie - find the ID of the client; will set if missing
func readUUIDCookie(c echo.Context) string {
	cookie, err := c.Cookie("ID")
	if err != nil {
		return writeUUIDCookie(c)
	}
	id := cookie.Value

	if !AllStates.IsInVault(id) {
		AllStates.InsertState(id, nav.State{})
	}

	return id
}

// writeUUIDCookie - set the ID of the client
func writeUUIDCookie(c echo.Context) string {
	cookie := new(http.Cookie)
	cookie.Name = "ID"
	cookie.Path = "/"
	cookie.Value = uuid.New().String()
	cookie.Expires = time.Now().Add(4800 * time.Hour)
	c.SetCookie(cookie)

	AllStates.InsertState(cookie.Value, nav.State{})

	msg(fmt.Sprintf("writeUUIDCookie() - new ID set: %s", cookie.Value), mm.MSGPEEK)
	return cookie.Value
}
