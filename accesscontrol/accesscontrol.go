// Package accesscontrol gates mutating operations behind role-based
// permissions. Credential verification itself stays outside the
// alerting core: handlers receive an already-authenticated Principal
// and consult the capability table as an opaque boolean gate.
package accesscontrol

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleAdmin           Role = "admin"
	RoleDataScientist   Role = "data_scientist"
	RoleMLEngineer      Role = "ml_engineer"
	RoleBusinessAnalyst Role = "business_analyst"
	RoleViewer          Role = "viewer"
)

type Permission string

const (
	PermissionMetricsWrite Permission = "metrics.write"
	PermissionModelsWrite  Permission = "models.write"
	PermissionAlertsWrite  Permission = "alerts.write"
	PermissionAlertsRead   Permission = "alerts.read"
)

type Principal struct {
	UserId string
	Role   Role
}

var (
	ErrUnknownRole        = errors.New("unknown role")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// CapabilityTable is the static role to permission-set mapping,
// resolved once at startup rather than rebuilt per request. Admin
// implicitly holds every permission.
type CapabilityTable map[Role]map[Permission]bool

func NewCapabilityTable() CapabilityTable {
	grants := map[Role][]Permission{
		RoleAdmin:           {PermissionMetricsWrite, PermissionModelsWrite, PermissionAlertsWrite, PermissionAlertsRead},
		RoleDataScientist:   {PermissionMetricsWrite, PermissionModelsWrite, PermissionAlertsWrite, PermissionAlertsRead},
		RoleMLEngineer:      {PermissionMetricsWrite, PermissionModelsWrite, PermissionAlertsWrite, PermissionAlertsRead},
		RoleBusinessAnalyst: {PermissionAlertsRead},
		RoleViewer:          {PermissionAlertsRead},
	}

	table := CapabilityTable{}
	for role, permissions := range grants {
		table[role] = map[Permission]bool{}
		for _, permission := range permissions {
			table[role][permission] = true
		}
	}
	return table
}

func (t CapabilityTable) Authorize(principal *Principal, permission Permission) bool {
	if principal == nil {
		return false
	}
	if principal.Role == RoleAdmin {
		return true
	}
	return t[principal.Role][permission]
}

type PrincipalConfig struct {
	UserId    string `yaml:"user_id"`
	Role      string `yaml:"role"`
	Token     string `yaml:"token"`
	TokenHash string `yaml:"token_hash"`
}

func (c PrincipalConfig) Validate() error {
	if c.UserId == "" {
		return fmt.Errorf("Configuration error: principal user_id is empty")
	}
	if c.Role == "" {
		return fmt.Errorf("Configuration error: role is empty for user %s", c.UserId)
	}
	if c.Token == "" && c.TokenHash == "" {
		return fmt.Errorf("Configuration error: both token and token_hash are empty for user %s", c.UserId)
	}
	if c.Token != "" && c.TokenHash != "" {
		return fmt.Errorf("Configuration error: both token and token_hash are set for user %s, please set only one of them", c.UserId)
	}
	if c.TokenHash != "" {
		if _, err := bcrypt.Cost([]byte(c.TokenHash)); err != nil {
			return fmt.Errorf("Configuration error: token_hash is not a valid bcrypt hash for user %s", c.UserId)
		}
	}
	return nil
}

type principalEntry struct {
	principal Principal
	tokenHash []byte
}

// AccessControl verifies bearer tokens against configured principals
// and answers permission checks from the capability table.
type AccessControl struct {
	table      CapabilityTable
	principals []principalEntry
}

func New(configs []PrincipalConfig) (*AccessControl, error) {
	ac := &AccessControl{
		table: NewCapabilityTable(),
	}

	for _, conf := range configs {
		role := Role(conf.Role)
		if _, ok := ac.table[role]; !ok {
			return nil, fmt.Errorf("%w: %q for user %s", ErrUnknownRole, conf.Role, conf.UserId)
		}

		tokenHash := []byte(conf.TokenHash)
		if conf.TokenHash == "" {
			var err error
			tokenHash, err = bcrypt.GenerateFromPassword([]byte(conf.Token), bcrypt.MinCost)
			if err != nil {
				return nil, err
			}
		}

		ac.principals = append(ac.principals, principalEntry{
			principal: Principal{UserId: conf.UserId, Role: role},
			tokenHash: tokenHash,
		})
	}
	return ac, nil
}

// Authenticate maps a bearer token to the Principal it was issued to.
func (ac *AccessControl) Authenticate(token string) (*Principal, error) {
	for _, entry := range ac.principals {
		if bcrypt.CompareHashAndPassword(entry.tokenHash, []byte(token)) == nil {
			principal := entry.principal
			return &principal, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (ac *AccessControl) Authorize(principal *Principal, permission Permission) bool {
	return ac.table.Authorize(principal, permission)
}
