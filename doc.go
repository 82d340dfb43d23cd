// Package samedigit trains a siamese feed-forward network
// to decide whether two handwritten digit images depict
// the same digit.
//
// A single shared encoder maps each image of a pair to an
// embedding, and a contrastive cost pulls embeddings of
// matching pairs together while pushing mismatched pairs
// at least a margin apart.
package samedigit
