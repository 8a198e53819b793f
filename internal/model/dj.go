package model

// DJ is one profile in the Vault: the roster of artists available for
// booking. Genre and vibe tags are normalized to trimmed lowercase on the
// way in so matching in the lineup engine is a plain string comparison.
// Banking fields are optional and only used when settling fees after an
// event.
//
// Fields:
//  ID             – primary key identifier.
//  Email          – unique contact email; duplicate registrations are
//                   rejected.
//  Name, Surname  – legal name, snapshotted into confirmed lineups.
//  ContactNumber  – phone number for day-of-show coordination.
//  PreferredComms – how the DJ prefers to be reached (whatsapp, IG,
//                   email).
//  Alias          – stage name shown on posters and lineups.
//  Bio            – free-text biography.
//  IGLink         – Instagram profile URL.
//  FeeCents       – the DJ's standard asking rate in cents.
//  Genres         – lowercase genre tags (e.g. "techno", "deep house").
//  Vibes          – lowercase vibe tags (e.g. "peak time", "chill").
//  Experience     – tier: bedroom, regular or pro.
//  BankName, AccountHolder, AccountNumber – payout details (optional).
//  ProfilePic     – URL of the profile image (optional).
//  MixURL         – URL of a demo mix (optional).
//  CreatedAt      – creation timestamp in DB format.
type DJ struct {
	ID             uint64   `json:"id"`              // djs.id
	Email          string   `json:"email"`           // djs.email (unique)
	Name           string   `json:"name"`            // djs.name
	Surname        string   `json:"surname"`         // djs.surname
	ContactNumber  string   `json:"contact_number"`  // djs.contact_number
	PreferredComms string   `json:"preferred_comms"` // djs.preferred_comms
	Alias          string   `json:"alias"`           // djs.alias
	Bio            string   `json:"bio"`             // djs.bio
	IGLink         string   `json:"ig_link"`         // djs.ig_link
	FeeCents       uint32   `json:"fee_cents"`       // djs.fee_cents
	Genres         []string `json:"genres"`          // djs.genres (JSON column)
	Vibes          []string `json:"vibes"`           // djs.vibes (JSON column)
	Experience     string   `json:"experience"`      // djs.experience
	BankName       string   `json:"bank_name"`       // djs.bank_name
	AccountHolder  string   `json:"account_holder"`  // djs.account_holder
	AccountNumber  string   `json:"account_number"`  // djs.account_number
	ProfilePic     string   `json:"profile_pic"`     // djs.profile_pic
	MixURL         string   `json:"mix_url"`         // djs.mix_url
	CreatedAt      string   `json:"created_at"`      // djs.created_at
}

// Allowed values for DJ.PreferredComms.
const (
	CommsWhatsapp = "whatsapp"
	CommsIG       = "IG"
	CommsEmail    = "email"
)

// LegalName joins the first and last name for lineup snapshots. It
// returns an empty string when neither part is set.
func (d DJ) LegalName() string {
	switch {
	case d.Name == "":
		return d.Surname
	case d.Surname == "":
		return d.Name
	default:
		return d.Name + " " + d.Surname
	}
}
