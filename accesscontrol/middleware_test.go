package accesscontrol_test

import (
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/modelwatch/modelwatch/accesscontrol"
)

var _ = Describe("Middleware", func() {
	var (
		middleware *accesscontrol.Middleware
		resp       *httptest.ResponseRecorder
		req        *http.Request
	)

	BeforeEach(func() {
		logger := lagertest.NewTestLogger("middleware")
		accessControl, err := accesscontrol.New([]accesscontrol.PrincipalConfig{
			{UserId: "alice", Role: "ml_engineer", Token: "alice-token"},
			{UserId: "bob", Role: "viewer", Token: "bob-token"},
		})
		Expect(err).NotTo(HaveOccurred())
		middleware = accesscontrol.NewMiddleware(logger, accessControl)

		resp = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/v1/models/model-1/alerts", nil)
	})

	Describe("Authenticate", func() {
		var nextCalled bool

		JustBeforeEach(func() {
			nextCalled = false
			handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				principal := accesscontrol.PrincipalFromContext(r.Context())
				Expect(principal).NotTo(BeNil())
				Expect(principal.UserId).To(Equal("alice"))
			}))
			handler.ServeHTTP(resp, req)
		})

		Context("with a valid bearer token", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer alice-token")
			})
			It("stores the principal and calls through", func() {
				Expect(nextCalled).To(BeTrue())
				Expect(resp.Code).To(Equal(http.StatusOK))
			})
		})

		Context("without an authorization header", func() {
			It("responds 401", func() {
				Expect(nextCalled).To(BeFalse())
				Expect(resp.Code).To(Equal(http.StatusUnauthorized))
				Expect(resp.Body.String()).To(ContainSubstring("Bearer authorization is not used properly"))
			})
		})

		Context("with a basic scheme", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Basic YWxpY2U6cHc=")
			})
			It("responds 401", func() {
				Expect(resp.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		Context("with an invalid token", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer wrong-token")
			})
			It("responds 401", func() {
				Expect(nextCalled).To(BeFalse())
				Expect(resp.Code).To(Equal(http.StatusUnauthorized))
				Expect(resp.Body.String()).To(ContainSubstring("Invalid bearer token"))
			})
		})
	})

	Describe("RequirePermission", func() {
		var nextCalled bool

		JustBeforeEach(func() {
			nextCalled = false
			handler := middleware.Authenticate(
				middleware.RequirePermission(accesscontrol.PermissionMetricsWrite,
					http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
						nextCalled = true
					})))
			handler.ServeHTTP(resp, req)
		})

		Context("when the principal holds the permission", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer alice-token")
			})
			It("calls through", func() {
				Expect(nextCalled).To(BeTrue())
				Expect(resp.Code).To(Equal(http.StatusOK))
			})
		})

		Context("when the principal lacks the permission", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer bob-token")
			})
			It("responds 403", func() {
				Expect(nextCalled).To(BeFalse())
				Expect(resp.Code).To(Equal(http.StatusForbidden))
				Expect(resp.Body.String()).To(ContainSubstring("Not enough permissions"))
			})
		})
	})
})
