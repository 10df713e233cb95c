package accesscontrol_test

import (
	"golang.org/x/crypto/bcrypt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/modelwatch/modelwatch/accesscontrol"
)

var _ = Describe("CapabilityTable", func() {
	var table CapabilityTable

	BeforeEach(func() {
		table = NewCapabilityTable()
	})

	It("grants every permission to admin", func() {
		principal := &Principal{UserId: "root", Role: RoleAdmin}
		Expect(table.Authorize(principal, PermissionMetricsWrite)).To(BeTrue())
		Expect(table.Authorize(principal, PermissionModelsWrite)).To(BeTrue())
		Expect(table.Authorize(principal, PermissionAlertsWrite)).To(BeTrue())
		Expect(table.Authorize(principal, PermissionAlertsRead)).To(BeTrue())
	})

	It("grants write permissions to data scientists and ml engineers", func() {
		Expect(table.Authorize(&Principal{Role: RoleDataScientist}, PermissionMetricsWrite)).To(BeTrue())
		Expect(table.Authorize(&Principal{Role: RoleMLEngineer}, PermissionAlertsWrite)).To(BeTrue())
	})

	It("restricts business analysts and viewers to reads", func() {
		Expect(table.Authorize(&Principal{Role: RoleBusinessAnalyst}, PermissionAlertsRead)).To(BeTrue())
		Expect(table.Authorize(&Principal{Role: RoleBusinessAnalyst}, PermissionAlertsWrite)).To(BeFalse())
		Expect(table.Authorize(&Principal{Role: RoleViewer}, PermissionMetricsWrite)).To(BeFalse())
	})

	It("denies a nil principal", func() {
		Expect(table.Authorize(nil, PermissionAlertsRead)).To(BeFalse())
	})
})

var _ = Describe("AccessControl", func() {
	var (
		accessControl *AccessControl
		err           error
		configs       []PrincipalConfig
	)

	BeforeEach(func() {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte("s3cr3t"), bcrypt.MinCost)
		Expect(hashErr).NotTo(HaveOccurred())
		configs = []PrincipalConfig{
			{UserId: "alice", Role: "ml_engineer", Token: "alice-token"},
			{UserId: "bob", Role: "viewer", TokenHash: string(hash)},
		}
	})

	JustBeforeEach(func() {
		accessControl, err = New(configs)
	})

	It("authenticates a cleartext-configured token", func() {
		Expect(err).NotTo(HaveOccurred())
		principal, authErr := accessControl.Authenticate("alice-token")
		Expect(authErr).NotTo(HaveOccurred())
		Expect(principal.UserId).To(Equal("alice"))
		Expect(principal.Role).To(Equal(RoleMLEngineer))
	})

	It("authenticates against a configured bcrypt hash", func() {
		principal, authErr := accessControl.Authenticate("s3cr3t")
		Expect(authErr).NotTo(HaveOccurred())
		Expect(principal.UserId).To(Equal("bob"))
	})

	It("rejects an unknown token", func() {
		_, authErr := accessControl.Authenticate("wrong")
		Expect(authErr).To(MatchError(ErrInvalidCredentials))
	})

	Context("when a principal carries an unknown role", func() {
		BeforeEach(func() {
			configs = []PrincipalConfig{{UserId: "eve", Role: "superuser", Token: "t"}}
		})
		It("fails", func() {
			Expect(err).To(MatchError(ErrUnknownRole))
		})
	})
})

var _ = Describe("PrincipalConfig", func() {
	var config PrincipalConfig

	BeforeEach(func() {
		config = PrincipalConfig{UserId: "alice", Role: "viewer", Token: "t"}
	})

	It("accepts a token-based principal", func() {
		Expect(config.Validate()).To(Succeed())
	})

	It("requires a user id", func() {
		config.UserId = ""
		Expect(config.Validate()).To(MatchError("Configuration error: principal user_id is empty"))
	})

	It("requires a role", func() {
		config.Role = ""
		Expect(config.Validate()).To(MatchError("Configuration error: role is empty for user alice"))
	})

	It("requires exactly one of token and token_hash", func() {
		config.Token = ""
		Expect(config.Validate()).To(MatchError("Configuration error: both token and token_hash are empty for user alice"))

		config.Token = "t"
		config.TokenHash = "$2a$04$whatever"
		Expect(config.Validate()).To(MatchError("Configuration error: both token and token_hash are set for user alice, please set only one of them"))
	})

	It("rejects a malformed token_hash", func() {
		config.Token = ""
		config.TokenHash = "not-bcrypt"
		Expect(config.Validate()).To(MatchError("Configuration error: token_hash is not a valid bcrypt hash for user alice"))
	})
})
