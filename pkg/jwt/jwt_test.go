package jwt_test

import (
	"time"

	tokenIssuer "dietlog/pkg/jwt"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service   *tokenIssuer.JWTService
		secret    []byte
		sessionID string
		info      tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		secret = []byte("test-secret")
		service = tokenIssuer.NewJWTService(secret)
		sessionID = uuid.NewString()
		info = tokenIssuer.TokenInfo{
			SessionID:  sessionID,
			Subject:    "42",
			Expiration: time.Hour,
		}
	})

	Describe("Generate and Sign", func() {
		It("produces a token that validates with the same secret", func() {
			token := service.Generate(info)
			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["jti"]).To(Equal(sessionID))
			Expect(claims["sub"]).To(Equal("42"))
		})
	})

	Describe("Validate", func() {
		When("the token was signed with a different secret", func() {
			It("rejects the token", func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				signed, err := other.Sign(other.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token has expired", func() {
			It("rejects the token", func() {
				info.Expiration = -time.Hour
				signed, err := service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(HaveOccurred())
			})
		})

		When("the token is garbage", func() {
			It("rejects the token", func() {
				_, err := service.Validate("not-a-token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})
})
