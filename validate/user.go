package validate

import (
	"github.com/samber/lo"

	"github.com/scimkit/scimkit/model"
)

// User reports every structural rule the user breaks.
func User(u *model.User) Violations {
	var vs Violations

	vs = append(vs, checkSchemas(u.Schemas, model.UserSchemaID)...)
	vs = append(vs, checkRequired("userName", u.UserName)...)

	vs = append(vs, checkMultiValued("emails", u.Emails, emailTypes,
		func(e model.UserEmail) string { return e.Type },
		func(e model.UserEmail) bool { return e.Primary })...)

	vs = append(vs, checkMultiValued("phoneNumbers", u.PhoneNumbers, phoneTypes,
		func(p model.UserPhoneNumber) string { return p.Type },
		func(p model.UserPhoneNumber) bool { return p.Primary })...)

	vs = append(vs, checkMultiValued("ims", u.Ims, imTypes,
		func(i model.UserIm) string { return i.Type },
		func(i model.UserIm) bool { return i.Primary })...)

	vs = append(vs, checkMultiValued("photos", u.Photos, photoTypes,
		func(p model.UserPhoto) string { return p.Type },
		func(p model.UserPhoto) bool { return p.Primary })...)

	vs = append(vs, checkMultiValued("addresses", u.Addresses, addressTypes,
		func(a model.UserAddress) string { return a.Type },
		func(a model.UserAddress) bool { return a.Primary })...)

	vs = append(vs, checkMultiValued("groups", u.Groups, userGroupTypes,
		func(g model.UserGroup) string { return g.Type },
		nil)...)

	// entitlements, roles, and x509Certificates have no canonical type set;
	// only primary uniqueness applies.
	vs = append(vs, checkMultiValued("entitlements", u.Entitlements, nil,
		nil,
		func(e model.UserEntitlement) bool { return e.Primary })...)

	vs = append(vs, checkMultiValued("roles", u.Roles, nil,
		nil,
		func(r model.UserRole) bool { return r.Primary })...)

	vs = append(vs, checkMultiValued("x509Certificates", u.X509Certificates, nil,
		nil,
		func(c model.UserX509Certificate) bool { return c.Primary })...)

	vs = append(vs, checkEnterprise(u)...)
	vs = append(vs, checkMeta(u.Meta)...)

	return vs
}

// checkEnterprise enforces the extension gate: a populated payload needs
// the URN declared in schemas. Declaring the URN with an empty payload is
// allowed; the wire form cannot distinguish empty from absent.
func checkEnterprise(u *model.User) Violations {
	declared := lo.Contains(u.Schemas, model.EnterpriseUserSchemaID)
	populated := !u.EnterpriseUser.IsZero()

	if populated && !declared {
		return Violations{{
			Path:  model.EnterpriseUserSchemaID,
			Rule:  RuleSchemaConsistency,
			Value: "extension payload is populated but its URN is not declared in schemas",
		}}
	}

	return nil
}
