package rbac

import (
	"go-outtime/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// Roles inherit downward: OWNER > ADMIN > VIEWER.
var groupingPolicy = [][]string{
	{domain.RoleOwner, domain.RoleAdmin},
	{domain.RoleAdmin, domain.RoleViewer},
}

var policy = [][]string{
	{domain.RoleViewer, "dashboard", "read"},
	{domain.RoleViewer, "employee", "read"},
	{domain.RoleViewer, "invite", "read"},
	{domain.RoleViewer, "report", "read"},
	{domain.RoleViewer, "settings", "read"},

	{domain.RoleAdmin, "employee", "*"},
	{domain.RoleAdmin, "invite", "*"},
	{domain.RoleAdmin, "report", "*"},
	{domain.RoleAdmin, "user", "read"},

	{domain.RoleOwner, "settings", "*"},
	{domain.RoleOwner, "user", "*"},
}

// NewEnforcer builds an in-memory enforcer loaded with the built-in roles.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	if _, err := e.AddPolicies(policy); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicies(groupingPolicy); err != nil {
		return nil, err
	}
	return e, nil
}
