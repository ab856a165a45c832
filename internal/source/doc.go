// Package source decodes debate format files written against schema 1.0 and
// 1.1 into a raw element tree.
//
// Nothing here resolves references or merges resources; the tree mirrors the
// file closely so that absent attributes stay absent:
//
//	<debateformat name="BP" schemaversion="1.1">
//	  <info>...</info>
//	  <resource ref="#all">
//	    <period ref="normal" desc="" bgcolor="#000000"/>
//	    <bell time="finish" number="2" nextperiod="overtime"/>
//	  </resource>
//	  <preptime length="15:00"/>
//	  <speechtype ref="pm" length="7:00" firstperiod="normal">
//	    <include resource="pois"/>
//	  </speechtype>
//	  <speeches>
//	    <speech name="Prime Minister" type="pm"/>
//	  </speeches>
//	</debateformat>
package source
