package domain

// MaskContact hides a contact value for vendors that keep contacts private.
func MaskContact(value string) string {
	r := []rune(value)
	switch {
	case len(r) == 0:
		return "-"
	case len(r) <= 4:
		return "****"
	default:
		return string(r[:2]) + "***" + string(r[len(r)-2:])
	}
}

// PublicContact returns the contact as shown to visitors: verbatim when the
// vendor publishes it, masked otherwise.
func (v *Vendor) PublicContact() Contact {
	if v.ContactPublic {
		return v.Contact
	}
	return Contact{
		Phone: MaskContact(v.Contact.Phone),
		Email: MaskContact(v.Contact.Email),
		Kakao: MaskContact(v.Contact.Kakao),
	}
}

// PresentedTo returns a copy of the vendor as the actor may see it. The
// owner and administrators see the full contact.
func (v *Vendor) PresentedTo(a Actor) Vendor {
	out := v.Clone()
	if a.IsAdmin() || (a.UserID != "" && a.UserID == v.OwnerUserID) {
		return out
	}
	out.Contact = v.PublicContact()
	return out
}
