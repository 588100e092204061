package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Hittable // Multiple shapes for leaf nodes (nil for internal nodes)
}

// BVH is a Bounding Volume Hierarchy over a set of hittables.
// Light sampling methods forward to the flat list of its members.
type BVH struct {
	Root    *BVHNode
	objects *HittableList
}

// Leaf threshold: if we have this many or fewer shapes, store them in a leaf node
const leafThreshold = 8

// NewBVH constructs a BVH from a slice of shapes.
// Every shape must have a bounding box.
func NewBVH(shapes []Hittable) (*BVH, error) {
	if len(shapes) == 0 {
		return &BVH{objects: NewHittableList()}, nil
	}

	// Copy so partitioning never reorders the caller's slice
	shapesCopy := make([]Hittable, len(shapes))
	copy(shapesCopy, shapes)

	boxes := make(map[Hittable]core.AABB, len(shapes))
	for i, shape := range shapesCopy {
		box, ok := shape.BoundingBox()
		if !ok {
			return nil, fmt.Errorf("shape %d (%T) has no bounding box", i, shape)
		}
		boxes[shape] = box
	}

	return &BVH{
		Root:    buildBVH(shapesCopy, boxes),
		objects: NewHittableList(shapesCopy...),
	}, nil
}

// buildBVH recursively builds the BVH using median splitting on the longest axis
func buildBVH(shapes []Hittable, boxes map[Hittable]core.AABB) *BVHNode {
	boundingBox := boxes[shapes[0]]
	for i := 1; i < len(shapes); i++ {
		boundingBox = core.SurroundingBox(boundingBox, boxes[shapes[i]])
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{
			BoundingBox: boundingBox,
			Shapes:      shapes,
		}
	}

	axis := boundingBox.LongestAxis()
	minVal, maxVal := boundingBox.Min.Axis(axis), boundingBox.Max.Axis(axis)
	if maxVal <= minVal {
		return &BVHNode{
			BoundingBox: boundingBox,
			Shapes:      shapes,
		}
	}

	leftShapes, rightShapes := partitionShapes(shapes, boxes, axis, (minVal+maxVal)*0.5)

	// Ensure we don't create empty partitions
	if len(leftShapes) == 0 || len(rightShapes) == 0 {
		return &BVHNode{
			BoundingBox: boundingBox,
			Shapes:      shapes,
		}
	}

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(leftShapes, boxes),
		Right:       buildBVH(rightShapes, boxes),
	}
}

// partitionShapes splits shapes by their box center along axis
func partitionShapes(shapes []Hittable, boxes map[Hittable]core.AABB, axis int, splitPos float64) ([]Hittable, []Hittable) {
	var leftShapes, rightShapes []Hittable

	for _, shape := range shapes {
		if boxes[shape].Center().Axis(axis) < splitPos {
			leftShapes = append(leftShapes, shape)
		} else {
			rightShapes = append(rightShapes, shape)
		}
	}

	return leftShapes, rightShapes
}

// Hit tests if a ray intersects any shape in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	hit := hitNode(bvh.Root, ray, tMin, tMax)
	return hit, hit != nil
}

// hitNode recursively tests ray intersection with BVH nodes
func hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) *material.HitRecord {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil
	}

	var closest *material.HitRecord
	closestSoFar := tMax

	// Leaf node: linear search
	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
				closest = hit
				closestSoFar = hit.T
			}
		}
		return closest
	}

	if node.Left != nil {
		if hit := hitNode(node.Left, ray, tMin, closestSoFar); hit != nil {
			closest = hit
			closestSoFar = hit.T
		}
	}
	if node.Right != nil {
		if hit := hitNode(node.Right, ray, tMin, closestSoFar); hit != nil {
			closest = hit
		}
	}

	return closest
}

// BoundingBox returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() (core.AABB, bool) {
	if bvh.Root == nil {
		return core.AABB{}, false
	}
	return bvh.Root.BoundingBox, true
}

// PDFValue averages the member densities
func (bvh *BVH) PDFValue(origin, direction core.Vec3) float64 {
	return bvh.objects.PDFValue(origin, direction)
}

// Random delegates to one member chosen uniformly
func (bvh *BVH) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return bvh.objects.Random(origin, sampler)
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes  int
	leafNodes   int
	maxDepth    int
	totalShapes int
}

// getStats returns statistics about the BVH structure
func (bvh *BVH) getStats() bvhStats {
	stats := bvhStats{}
	if bvh.Root != nil {
		collectStats(bvh.Root, 0, &stats)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func collectStats(node *BVHNode, depth int, stats *bvhStats) {
	stats.totalNodes++
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	if node.Shapes != nil {
		stats.leafNodes++
		stats.totalShapes += len(node.Shapes)
		return
	}
	if node.Left != nil {
		collectStats(node.Left, depth+1, stats)
	}
	if node.Right != nil {
		collectStats(node.Right, depth+1, stats)
	}
}
