// Package authz holds the role policy table consulted as the first step of
// every marketplace operation.
package authz

import (
	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/pkg/errs"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	ResourceDeal         = "deal"
	ResourceModeration   = "moderation"
	ResourceOrder        = "order"
	ResourceFulfillment  = "fulfillment"
	ResourceFavorite     = "favorite"
	ResourceNotification = "notification"
	ResourceRestaurant   = "restaurant"
)

const (
	ActionRead     = "read"
	ActionWrite    = "write"
	ActionSubmit   = "submit"
	ActionApprove  = "approve"
	ActionReject   = "reject"
	ActionCheckout = "checkout"
	ActionAdvance  = "advance"
)

// member is the implicit role every authenticated caller holds.
const member = "member"

var ErrForbidden = errs.NewAuthorization("role is not permitted to perform this action")

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

var policies = [][]string{
	{string(user.RoleOwner), ResourceDeal, ActionRead},
	{string(user.RoleOwner), ResourceDeal, ActionWrite},
	{string(user.RoleOwner), ResourceDeal, ActionSubmit},
	{string(user.RoleOwner), ResourceFulfillment, ActionRead},
	{string(user.RoleOwner), ResourceFulfillment, ActionAdvance},
	{string(user.RoleOwner), ResourceRestaurant, ActionRead},
	{string(user.RoleOwner), ResourceRestaurant, ActionWrite},

	{string(user.RoleAdmin), ResourceModeration, ActionRead},
	{string(user.RoleAdmin), ResourceModeration, ActionApprove},
	{string(user.RoleAdmin), ResourceModeration, ActionReject},

	{member, ResourceOrder, ActionCheckout},
	{member, ResourceOrder, ActionRead},
	{member, ResourceFavorite, ActionRead},
	{member, ResourceFavorite, ActionWrite},
	{member, ResourceNotification, ActionRead},
	{member, ResourceNotification, ActionWrite},
}

var groupings = [][]string{
	{string(user.RoleCustomer), member},
	{string(user.RoleOwner), member},
	{string(user.RoleAdmin), member},
}

type Authorizer struct {
	enforcer *casbin.Enforcer
}

func NewAuthorizer() (*Authorizer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse rbac model")
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, errs.Wrap(err, "failed to initialize rbac enforcer")
	}
	if _, err := e.AddPolicies(policies); err != nil {
		return nil, errs.Wrap(err, "failed to load rbac policies")
	}
	if _, err := e.AddGroupingPolicies(groupings); err != nil {
		return nil, errs.Wrap(err, "failed to load rbac role groupings")
	}
	return &Authorizer{enforcer: e}, nil
}

// Authorize returns ErrForbidden unless role may perform action on resource.
func (a *Authorizer) Authorize(role user.Role, resource, action string) error {
	ok, err := a.enforcer.Enforce(string(role), resource, action)
	if err != nil {
		return errs.Wrap(err, "rbac permission check failed")
	}
	if !ok {
		return errs.Wrapf(ErrForbidden, "%s may not %s %s", role, action, resource)
	}
	return nil
}
