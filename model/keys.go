package model

// Property keys used for editor bookkeeping inside entity blocks. The
// _ed_ namespace keeps them clear of game keys.
const (
	KeyClassname     = "classname"
	KeyGroupType     = "_ed_type"
	KeyName          = "_ed_name"
	KeyId            = "_ed_id"
	KeyLayer         = "_ed_layer"
	KeyGroup         = "_ed_group"
	KeyLinkedGroupId = "_ed_linked_group_id"

	KeyLayerColor          = "_ed_layer_color"
	KeyLayerLocked         = "_ed_layer_locked"
	KeyLayerHidden         = "_ed_layer_hidden"
	KeyLayerOmitFromExport = "_ed_layer_omit_from_export"
	KeyLayerSortIndex      = "_ed_layer_sort_index"
)

const (
	// Layers and groups both serialize as func_group so any engine can
	// still load the map.
	ValueGroupClassname = "func_group"
	ValueGroupTypeLayer = "_ed_layer"
	ValueGroupTypeGroup = "_ed_group"
	ValueFlagSet        = "1"

	ValueWorldspawnClassname = "worldspawn"
)
