// Package hassmodel holds the runtime base types that code generated by
// hassgen derives from.
//
// A generated entity record embeds either Entity or NumericEntity,
// parameterised by its generated attribute record:
//
//	type LightEntity struct {
//		*hassmodel.Entity[LightAttributes]
//	}
//
// Entities are thin handles: an entity id bound to a HaContext. Every state
// read goes through the context, so a handle never goes stale.
package hassmodel
