package dsl

import "github.com/gogpu/thunder/ir"

// In declares a smooth-interpolated fragment input / vertex output at
// the given layout binding, of the type ty describes.
func In(binding uint32, ty ir.Index) ir.Index {
	return emit(ir.Qualifier{Underlying: ty, Binding: binding, Kind: ir.QualLayoutInSmooth})
}

// InFlat declares a flat-interpolated input at the given binding.
func InFlat(binding uint32, ty ir.Index) ir.Index {
	return emit(ir.Qualifier{Underlying: ty, Binding: binding, Kind: ir.QualLayoutInFlat})
}

// Out declares a smooth-interpolated output at the given binding.
func Out(binding uint32, ty ir.Index) ir.Index {
	return emit(ir.Qualifier{Underlying: ty, Binding: binding, Kind: ir.QualLayoutOutSmooth})
}

// OutFlat declares a flat-interpolated output at the given binding.
func OutFlat(binding uint32, ty ir.Index) ir.Index {
	return emit(ir.Qualifier{Underlying: ty, Binding: binding, Kind: ir.QualLayoutOutFlat})
}

// PushConstant declares the push-constant block of type ty.
func PushConstant(ty ir.Index) ir.Index {
	return emit(ir.Qualifier{Underlying: ty, Binding: 0, Kind: ir.QualPushConstant})
}

// Uniform declares a uniform block at the given binding.
func Uniform(binding uint32, ty ir.Index) ir.Index {
	return emit(ir.Qualifier{Underlying: ty, Binding: binding, Kind: ir.QualUniform})
}

// StorageBufferRead declares a read-only storage buffer at the given
// binding.
func StorageBufferRead(binding uint32, ty ir.Index) ir.Index {
	return emit(ir.Qualifier{Underlying: ty, Binding: binding, Kind: ir.QualStorageBufferRead})
}

// StorageBufferWrite declares a read-write storage buffer at the given
// binding.
func StorageBufferWrite(binding uint32, ty ir.Index) ir.Index {
	return emit(ir.Qualifier{Underlying: ty, Binding: binding, Kind: ir.QualStorageBufferWrite})
}

// BufferReference declares a buffer-device-address reference block.
func BufferReference(ty ir.Index) ir.Index {
	return emit(ir.Qualifier{Underlying: ty, Binding: 0, Kind: ir.QualBufferReference})
}

// RayPayload declares a ray-tracing payload slot at the given location.
func RayPayload(location uint32, ty ir.Index) ir.Index {
	return emit(ir.Qualifier{Underlying: ty, Binding: location, Kind: ir.QualRayPayload})
}

// RayPayloadIn declares an incoming ray-tracing payload slot.
func RayPayloadIn(location uint32, ty ir.Index) ir.Index {
	return emit(ir.Qualifier{Underlying: ty, Binding: location, Kind: ir.QualRayPayloadIn})
}

// HitAttribute declares a ray-tracing hit-attribute slot.
func HitAttribute(ty ir.Index) ir.Index {
	return emit(ir.Qualifier{Underlying: ty, Binding: 0, Kind: ir.QualHitAttribute})
}

// Sampler2DBinding declares a combined image-sampler at the given
// binding.
func Sampler2DBinding(binding uint32) ir.Index {
	ty := typeIndexPrimitive(ir.KindSampler2D)
	return emit(ir.Qualifier{Underlying: ty, Binding: binding, Kind: ir.QualSampler2D})
}

// Image2DBinding declares a storage image at the given binding.
func Image2DBinding(binding uint32) ir.Index {
	ty := typeIndexPrimitive(ir.KindImage2D)
	return emit(ir.Qualifier{Underlying: ty, Binding: binding, Kind: ir.QualImage2D})
}

// AccelerationStructureBinding declares a ray-tracing acceleration
// structure at the given binding.
func AccelerationStructureBinding(binding uint32) ir.Index {
	ty := typeIndexPrimitive(ir.KindAccelerationStructure)
	return emit(ir.Qualifier{Underlying: ty, Binding: binding, Kind: ir.QualAccelerationStructure})
}

// Parameter declares the n-th formal parameter of the enclosing
// procedure, of type ty.
func Parameter(n uint32, ty ir.Index) ir.Index {
	return emit(ir.Qualifier{Underlying: ty, Kind: ir.QualParameter, Extra: n})
}

// SharedLocalSize declares the compute workgroup's local size product.
func SharedLocalSize(product uint32) ir.Index {
	return emit(ir.Qualifier{Binding: product, Kind: ir.QualSharedLocalSize, Underlying: ir.NoIndex})
}
