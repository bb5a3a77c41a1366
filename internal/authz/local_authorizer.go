package authz

import (
	"boardinghouse/internal/models"
)

// LocalAuthorizer implements Authorizer using an in-process permission table.
// Roles are carried in the access token, so no database lookup is needed.
type LocalAuthorizer struct{}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer() *LocalAuthorizer {
	return &LocalAuthorizer{}
}

// rolePermissions maps actions to the roles that can perform them.
var rolePermissions = map[string][]string{
	ActionUserManage:           {models.RoleAdmin, models.RoleOwner},
	ActionContractManage:       {models.RoleAdmin, models.RoleOwner},
	ActionOccupancyManage:      {models.RoleAdmin, models.RoleOwner},
	ActionBillingManage:        {models.RoleAdmin, models.RoleOwner},
	ActionReservationCreate:    {models.RoleAdmin, models.RoleOwner, models.RoleClient},
	ActionWalletView:           {models.RoleAdmin, models.RoleOwner, models.RoleClient},
	ActionWalletTransact:       {models.RoleAdmin, models.RoleOwner, models.RoleClient},
	ActionWalletSettle:         {models.RoleAdmin, models.RoleOwner},
	ActionSettingsView:         {models.RoleAdmin, models.RoleOwner, models.RoleClient},
	ActionSettingsUpdate:       {models.RoleAdmin, models.RoleOwner, models.RoleClient},
	ActionTenantProfilesView:   {models.RoleAdmin, models.RoleOwner},
	ActionServiceRequestCreate: {models.RoleAdmin, models.RoleOwner, models.RoleClient},
	ActionServiceRequestManage: {models.RoleAdmin, models.RoleOwner},
}

// CanPerform checks if a role can perform an action.
func (a *LocalAuthorizer) CanPerform(role, action string) bool {
	allowedRoles, exists := rolePermissions[action]
	if !exists {
		return false // Unknown action
	}

	for _, allowed := range allowedRoles {
		if role == allowed {
			return true
		}
	}

	return false
}

// Ensure LocalAuthorizer implements Authorizer
var _ Authorizer = (*LocalAuthorizer)(nil)
