package middleware_test

import (
	"time"

	"github.com/rizkydarmawan/goblog/pkg/helpers"
)

func testJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
}
