package resolver

// ClassIsA reports whether instanceClass equals className or derives from it.
//
// The root class is an ancestor of every class, and a class is always itself;
// both cases answer true without consulting the database. Otherwise the chain
// of instanceClass is walked; known is false if a class on it is missing from
// the database before className is reached. Names are compared exactly.
func (r *Resolver) ClassIsA(instanceClass, className string) (isA, known bool) {
	if className == r.cfg.RootClass || instanceClass == className {
		return true, true
	}

	for name, class := range r.Ancestors(instanceClass) {
		if class == nil {
			r.logger.Debug("Cannot resolve is-a, class missing from reflection database.", "instance_class", instanceClass, "class_name", className, "missing", name)
			return false, false
		}
		if name == className {
			return true, true
		}
	}

	return false, true
}

// ClassIsAService reports whether instanceClass or any of its ancestors carries
// the service tag. known is false if a class on the chain is missing from the
// database before a tagged class is found.
func (r *Resolver) ClassIsAService(instanceClass string) (isService, known bool) {
	for name, class := range r.Ancestors(instanceClass) {
		if class == nil {
			r.logger.Debug("Cannot resolve service tag, class missing from reflection database.", "instance_class", instanceClass, "missing", name)
			return false, false
		}
		if class.HasTag(r.cfg.ServiceTag) {
			return true, true
		}
	}

	return false, true
}
