// Package authz provides authorization interfaces and implementations.
// This module is designed for future migration to SpiceDB or API Gateway.
package authz

// Action constants define the authorization actions.
const (
	ActionUserManage           = "user:manage"
	ActionContractManage       = "contract:manage"
	ActionOccupancyManage      = "occupancy:manage"
	ActionBillingManage        = "billing:manage"
	ActionReservationCreate    = "reservation:create"
	ActionWalletView           = "wallet:view"
	ActionWalletTransact       = "wallet:transact"
	ActionWalletSettle         = "wallet:settle"
	ActionSettingsView         = "settings:view"
	ActionSettingsUpdate       = "settings:update"
	ActionTenantProfilesView   = "tenant_profiles:view"
	ActionServiceRequestCreate = "service_request:create"
	ActionServiceRequestManage = "service_request:manage"
)

// Authorizer defines the interface for authorization checks.
// Implementations can be swapped for SpiceDB or removed for API Gateway.
type Authorizer interface {
	// CanPerform checks if a role can perform an action.
	CanPerform(role, action string) bool
}
