package model

// Entity is one of the countries or aggregates tracked in the ESI workbook.
// The set is closed; no entity appears or disappears at runtime.
type Entity int

const (
	EntityEU Entity = iota
	EntityEA
	EntityAT
	EntityBE
	EntityDK
	EntityDE
	EntityEL
	EntityES
	EntityFR
	EntityIT
	EntityNL
	EntityPL
	EntityPT
	EntityFI
	EntitySE
	EntityUK
)

// Entities lists every entity in canonical order (the column order of the
// workbook). Ranking tie-breaks and window alignment rely on this order.
var Entities = []Entity{
	EntityEU,
	EntityEA,
	EntityAT,
	EntityBE,
	EntityDK,
	EntityDE,
	EntityEL,
	EntityES,
	EntityFR,
	EntityIT,
	EntityNL,
	EntityPL,
	EntityPT,
	EntityFI,
	EntitySE,
	EntityUK,
}

var entityCodes = map[Entity]string{
	EntityEU: "eu",
	EntityEA: "ea",
	EntityAT: "at",
	EntityBE: "be",
	EntityDK: "dk",
	EntityDE: "de",
	EntityEL: "el",
	EntityES: "es",
	EntityFR: "fr",
	EntityIT: "it",
	EntityNL: "nl",
	EntityPL: "pl",
	EntityPT: "pt",
	EntityFI: "fi",
	EntitySE: "se",
	EntityUK: "uk",
}

var entityNames = map[Entity]string{
	EntityEU: "Europe",
	EntityEA: "Euro Area",
	EntityAT: "Austria",
	EntityBE: "Belgium",
	EntityDK: "Denmark",
	EntityDE: "Germany",
	EntityEL: "Greece",
	EntityES: "Spain",
	EntityFR: "France",
	EntityIT: "Italy",
	EntityNL: "Netherlands",
	EntityPL: "Poland",
	EntityPT: "Portugal",
	EntityFI: "Finland",
	EntitySE: "Sweden",
	EntityUK: "United Kingdom",
}

var entitiesByCode = func() map[string]Entity {
	m := make(map[string]Entity, len(entityCodes))
	for e, code := range entityCodes {
		m[code] = e
	}
	return m
}()

// Code returns the two-letter entity code used in workbook column headers.
func (e Entity) Code() string {
	return entityCodes[e]
}

// Name returns the display name.
func (e Entity) Name() string {
	return entityNames[e]
}

// EntityByCode looks up an entity by its two-letter code (case-insensitive
// lookup is the caller's job; codes here are lowercase).
func EntityByCode(code string) (Entity, bool) {
	e, ok := entitiesByCode[code]
	return e, ok
}
