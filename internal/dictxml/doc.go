// Package dictxml reads and writes metadata dictionaries in their XML
// interchange form (SMPTE ST 2001-1).
//
// # Document Format
//
//	<Baseline xmlns="http://www.smpte-ra.org/schemas/2001-1b/2014/metadict"
//	    rootElement="MXF" rootObject="Preface">
//	  <SchemeID>urn:uuid:a8846f64-c6e3-a41b-b276-ad1991606075</SchemeID>
//	  <SchemeURI>http://www.smpte-ra.org/reg/335/2012</SchemeURI>
//	  <Description>optional</Description>
//	  <MetaDefinitions>
//	    <ClassDefinition>...</ClassDefinition>
//	    <TypeEnumerationDefinition>
//	      ...
//	      <Elements>
//	        <Element><Name>Yes</Name><Value>1</Value><Description/></Element>
//	      </Elements>
//	    </TypeEnumerationDefinition>
//	  </MetaDefinitions>
//	</Baseline>
//
// Each definition is wrapped in the element named after its kind
// (definition.Kind.TagName). Definitions are written in declaration order.
//
// # Loading
//
// Decode treats its input as untrusted: the parsed definitions go through
// dict.New, so a document with duplicate identities or symbols is rejected.
// The scheme identity is always derived from SchemeURI; a SchemeID element
// that disagrees is reported through the logger and otherwise ignored.
//
// Schema violations are returned as *ParseError, which matches
// regxml.ErrMalformedInput. Duplicate definitions keep their own error type.
package dictxml
