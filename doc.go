// Package huffman implements Huffman coding over an explicit,
// frequency-weighted binary tree.
//
// A typical round trip looks like:
//
//     table := huffman.CountString(input)
//     root, err := huffman.Build(table)
//     codes := huffman.Invert(root)
//
// or, more simply, Encode and Decode, which carry the tree alongside the bit
// string as "<tree-json>;<bits>".
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
