package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 对外契约是扁平 JSON + 真实 HTTP 状态码，消息体统一从这里出

type Message struct {
	Message string `json:"message"`
}

type LoginResult struct {
	Message       string `json:"message"`
	Authorization string `json:"authorization"`
}

type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func Msg(c *gin.Context, status int, msg string) {
	c.JSON(status, Message{Message: msg})
}

// Internal 统一 500：细节进日志，不回给客户端
func Internal(c *gin.Context) {
	Msg(c, http.StatusInternalServerError, "Internal server error")
}
