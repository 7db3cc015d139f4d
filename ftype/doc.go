/*
Package ftype converts the raw tags of a single OSM element into typed
feature parameters: packed classification types, per-language names and
structured address and metadata fields.

The core logic is accessible with the Classifier struct. A Classifier is
built once from a classification tree (see classif) and is safe for
concurrent use; all mutable state lives in the per-element FeatureParams.

Classification runs in a fixed pipeline: tag preprocessing (derived layer
tags), name extraction, address/population/ref rules, greedy matching of
the remaining tags against the classification tree, and post-match
refinement (highway flags, subway networks, address fallbacks). Tags are
consumed along the way, either by clearing them in place (names,
addresses) or by a skip set local to the matcher, so no tag contributes to
more than one result.
*/
package ftype
